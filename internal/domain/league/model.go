package league

import "fmt"

// League is a keeper league tracked by the platform. SeasonYear and
// ContractWindowOpen mirror what the commissioner configured; the live
// season state used during sync comes from the external provider.
type League struct {
	ID                 string
	Name               string
	ExternalRefID      int64
	SeasonYear         int
	ContractWindowOpen bool
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.SeasonYear <= 0 {
		return fmt.Errorf("league season year is required")
	}

	return nil
}
