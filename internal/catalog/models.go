package catalog

// Nama field JSON mengikuti dokumen yang sudah ada di store — jangan diubah
// tanpa migrasi.

type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // minor units
	Category    int    `json:"category"`
	ImgPath     string `json:"imgPath"`
	Description string `json:"description"`
}

func (p *Product) GetID() int   { return p.ID }
func (p *Product) SetID(id int) { p.ID = id }

type Practitioner struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Specialities string `json:"specialities"`
}

func (p *Practitioner) GetID() int   { return p.ID }
func (p *Practitioner) SetID(id int) { p.ID = id }

type OrderedProduct struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	// Total dikirim client dan disimpan apa adanya; server tidak menghitung
	// ulang price*quantity.
	Total   int    `json:"total"`
	ImgPath string `json:"imgPath"`
}

// Order immutable setelah dibuat: tidak ada update/delete.
type Order struct {
	OrderID      string           `json:"order_id"`
	CustomerName string           `json:"customer_name"`
	Telephone1   string           `json:"telephone_1"`
	Telephone2   string           `json:"telephone_2"`
	Address      string           `json:"address"`
	OrderSummary []OrderedProduct `json:"order_summary"`
}

type SupplierForm struct {
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Inquiry   string `json:"inquiry,omitempty"`
}

// UserForm tidak pernah disimpan — diterima, di-log, selesai.
type UserForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}
