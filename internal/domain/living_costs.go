package domain

import "github.com/shopspring/decimal"

// LivingCosts is a snapshot of the cost-of-living categories. Every operation
// returns a new value; a snapshot is never modified after it is built.
type LivingCosts struct {
	Food        decimal.Decimal `yaml:"food" json:"food"`
	Rent        decimal.Decimal `yaml:"rent" json:"rent"`
	Utility     decimal.Decimal `yaml:"utility" json:"utility"`
	LivingGoods decimal.Decimal `yaml:"living_goods" json:"living_goods"`
	Other       decimal.Decimal `yaml:"other" json:"other"`
}

// CostCategory is a named living cost amount.
type CostCategory struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// DefaultMonthlyLivingCosts returns the default monthly budget.
func DefaultMonthlyLivingCosts() LivingCosts {
	return LivingCosts{
		Food:        decimal.NewFromInt(30000),
		Rent:        decimal.NewFromInt(70000),
		Utility:     decimal.NewFromInt(15000),
		LivingGoods: decimal.NewFromInt(10000),
		Other:       decimal.NewFromInt(50000),
	}
}

func (c LivingCosts) scale(f decimal.Decimal) LivingCosts {
	return LivingCosts{
		Food:        c.Food.Mul(f),
		Rent:        c.Rent.Mul(f),
		Utility:     c.Utility.Mul(f),
		LivingGoods: c.LivingGoods.Mul(f),
		Other:       c.Other.Mul(f),
	}
}

// Annualize converts monthly amounts to annual amounts.
func (c LivingCosts) Annualize() LivingCosts {
	return c.scale(decimal.NewFromInt(12))
}

// Inflate grows every category by rate.
func (c LivingCosts) Inflate(rate decimal.Decimal) LivingCosts {
	return c.scale(decimal.NewFromInt(1).Add(rate))
}

// ApplyMarriage scales the household-size dependent categories (rent,
// utility, living goods) by multiplier.
func (c LivingCosts) ApplyMarriage(multiplier decimal.Decimal) LivingCosts {
	next := c
	next.Rent = c.Rent.Mul(multiplier)
	next.Utility = c.Utility.Mul(multiplier)
	next.LivingGoods = c.LivingGoods.Mul(multiplier)
	return next
}

// ApplyHousePurchase drops rent for good.
func (c LivingCosts) ApplyHousePurchase() LivingCosts {
	next := c
	next.Rent = decimal.Zero
	return next
}

// Total sums all categories.
func (c LivingCosts) Total() decimal.Decimal {
	return c.Food.Add(c.Rent).Add(c.Utility).Add(c.LivingGoods).Add(c.Other)
}

// Categories lists the categories in display order.
func (c LivingCosts) Categories() []CostCategory {
	return []CostCategory{
		{Name: "food", Amount: c.Food},
		{Name: "rent", Amount: c.Rent},
		{Name: "utility", Amount: c.Utility},
		{Name: "living_goods", Amount: c.LivingGoods},
		{Name: "other", Amount: c.Other},
	}
}
