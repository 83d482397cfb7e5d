package tui

// collaborator is an external view surface. The core only mounts it:
// it receives no core state and reports nothing back, and every mount
// is a fresh instance with none of its previous state preserved.
type collaborator struct {
	title string
	body  string
}

func (c collaborator) render() string {
	return titleStyle.Render(c.title) + "\n" + c.body
}

// mountCollaborator builds the surface for a non-billing view.
func mountCollaborator(v viewState) collaborator {
	switch v {
	case viewSchedule:
		return collaborator{"Weekly Schedule", "Pickup and delivery timeline for the week."}
	case viewRoutes:
		return collaborator{"Route Map", "Live route assignments across the fleet."}
	case viewStaff:
		return collaborator{"Staff Management", "Driver and office staff roster."}
	case viewAccounting:
		return collaborator{"Accounting", "General ledger and reconciliation."}
	case viewActiveDeliveries:
		return collaborator{"Active Deliveries", "Vehicles currently on the road."}
	default:
		return collaborator{"Reports & Analytics", "Delivery volume, revenue and fleet utilisation."}
	}
}
