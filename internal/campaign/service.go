package campaign

import "time"

// Campaigns are configured in code for now; the marketing team
// changes them a couple of times a quarter.
var campaigns = []Campaign{
	{Name: "Weekend Special", Discount: 10, Window: "Sat-Sun"},
	{Name: "Happy Hours", Discount: 15, Window: "16:00-19:00"},
}

var offers = []Offer{
	{Code: "DINE10", Description: "10% off on orders above ₹800"},
	{Code: "WELCOME50", Description: "Flat ₹50 off on your first order"},
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Active returns the campaign list with the Active flag resolved
// against the current clock.
func (s *Service) Active() []Campaign {
	t := s.now()
	out := make([]Campaign, len(campaigns))
	copy(out, campaigns)

	for i := range out {
		switch out[i].Name {
		case "Weekend Special":
			wd := t.Weekday()
			out[i].Active = wd == time.Saturday || wd == time.Sunday
		case "Happy Hours":
			out[i].Active = t.Hour() >= 16 && t.Hour() < 19
		}
	}
	return out
}

func (s *Service) Offers() []Offer {
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}
