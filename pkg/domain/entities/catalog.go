package entities

// Machine represents one injection-molding machine in the plant
type Machine struct {
	ID   MachineID
	Name string
}
