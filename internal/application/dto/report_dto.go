package dto

// ProductMovementReport totales de movimientos de un producto, agrupados
// por tipo, con nombres de empleado y proveedor para la vista de gráfico.
type ProductMovementReport struct {
	InboundTotal  int64  `json:"inbound_total"`
	OutboundTotal int64  `json:"outbound_total"`
	EmployeeName  string `json:"employee_name,omitempty"`
	SupplierName  string `json:"supplier_name"`
}
