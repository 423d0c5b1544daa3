package calculation

import (
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// eventOutcome is the effect of an event on the running state.
type eventOutcome struct {
	cost    decimal.Decimal
	living  domain.LivingCosts
	house   domain.HouseOwnership
	married bool
}

// applyEvent dispatches a single event against the current year's living
// costs and ownership state.
func applyEvent(s *domain.Scenario, e domain.LifeEvent, living domain.LivingCosts, house domain.HouseOwnership, married bool) eventOutcome {
	out := eventOutcome{cost: decimal.Zero, living: living, house: house, married: married}

	switch e.Kind {
	case domain.EventMarriage:
		out.married = true
		out.living = living.ApplyMarriage(s.MarriageCostMultiplier)
	case domain.EventHousePurchase:
		out.cost = s.EventCosts.House
		out.house = house.Purchase(s.EventCosts.House)
		out.living = living.ApplyHousePurchase()
	default:
		out.cost = s.EventCosts.CostOf(e.Kind)
	}
	return out
}
