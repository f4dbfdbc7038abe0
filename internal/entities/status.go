package entities

type OrderStatus string

const (
	StatusNew             OrderStatus = "NEW"
	StatusProcessing      OrderStatus = "PROCESSING"
	StatusReadyToPack     OrderStatus = "READY_TO_PACK"
	StatusPacked          OrderStatus = "PACKED"
	StatusReadyToShip     OrderStatus = "READY_TO_SHIP"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusFinished        OrderStatus = "FINISHED"
	StatusRecipientDenied OrderStatus = "RECIPIENT_DENIED"
	StatusReturning       OrderStatus = "RETURNING"
	StatusRefusedToReturn OrderStatus = "REFUSED_TO_RETURN"
	StatusReturned        OrderStatus = "RETURNED"
	StatusCanceled        OrderStatus = "CANCELED"
)

// allowedTransitions is the single authoritative transition table.
// Both manual status changes and carrier-driven updates are checked
// against it, side branches included.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:             {StatusProcessing, StatusCanceled},
	StatusProcessing:      {StatusReadyToPack, StatusCanceled},
	StatusReadyToPack:     {StatusPacked, StatusCanceled},
	StatusPacked:          {StatusReadyToShip, StatusCanceled},
	StatusReadyToShip:     {StatusShipped, StatusFinished, StatusCanceled},
	StatusShipped:         {StatusFinished, StatusRecipientDenied},
	StatusRecipientDenied: {StatusReturning, StatusRefusedToReturn},
	StatusReturning:       {StatusReturned},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusFinished, StatusCanceled, StatusReturned, StatusRefusedToReturn:
		return true
	}
	return false
}

// ShippedOrLater reports whether the carrier has (or had) physical
// custody of the parcel. Orders in these states cannot be edited or
// canceled anymore.
func (s OrderStatus) ShippedOrLater() bool {
	switch s {
	case StatusShipped, StatusFinished, StatusRecipientDenied,
		StatusReturning, StatusRefusedToReturn, StatusReturned:
		return true
	}
	return false
}

// NonTerminalStatuses lists every status the shipment sync job still
// cares about.
func NonTerminalStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNew, StatusProcessing, StatusReadyToPack, StatusPacked,
		StatusReadyToShip, StatusShipped, StatusRecipientDenied, StatusReturning,
	}
}
