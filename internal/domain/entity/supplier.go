package entity

// Supplier representa un proveedor. La tabla existe en el esquema pero este
// núcleo no implementa operaciones sobre ella.
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     string
}
