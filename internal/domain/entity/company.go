package entity

// Company representa una contraparte de facturación (datos de contacto y dirección).
// Se crea una sola vez y no se modifica.
type Company struct {
	ID      int64
	UUID    string
	Name    string
	Address string
	Phone   string
	City    string
	State   string
	Zipcode string
}
