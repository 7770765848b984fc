package booking

type Party struct {
	Adults   int
	Children int
}

func (p Party) Total() int {
	return p.Adults + p.Children
}

// WeightedPeople counts each child as half an adult.
func (p Party) WeightedPeople() float64 {
	return float64(p.Adults) + float64(p.Children)*0.5
}

func (p Party) Validate() error {
	if p.Adults < 0 || p.Children < 0 {
		return ErrInvalidBookingInput
	}
	if p.Total() < 1 {
		return ErrEmptyParty
	}
	return nil
}
