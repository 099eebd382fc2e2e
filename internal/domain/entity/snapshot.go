package entity

// Snapshot vista inmutable de las cinco colecciones en una versión dada del store.
// Quien la recibe no debe modificar los slices; el store nunca los reutiliza tras una mutación.
type Snapshot struct {
	Version    uint64          `json:"version"`
	Branches   []Branch        `json:"branches"`
	Services   []Service       `json:"services"`
	Therapists []Therapist     `json:"therapists"`
	Bookings   []Booking       `json:"bookings"`
	Inventory  []InventoryItem `json:"inventory"`
}

// BranchByID busca una sucursal; ok=false si no existe.
func (s *Snapshot) BranchByID(id string) (Branch, bool) {
	for _, b := range s.Branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}
