package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestLivingCosts_Annualize(t *testing.T) {
	annual := DefaultMonthlyLivingCosts().Annualize()
	assert.True(t, annual.Food.Equal(d(360000)))
	assert.True(t, annual.Rent.Equal(d(840000)))
	assert.True(t, annual.Total().Equal(d(2100000)), "got %s", annual.Total())
}

func TestLivingCosts_InflateDoesNotMutate(t *testing.T) {
	base := DefaultMonthlyLivingCosts().Annualize()
	next := base.Inflate(decimal.NewFromFloat(0.02))

	assert.True(t, base.Total().Equal(d(2100000)), "original snapshot changed")
	assert.True(t, next.Total().Equal(d(2142000)), "got %s", next.Total())
	assert.True(t, next.Rent.Equal(d(856800)))
}

func TestLivingCosts_ApplyMarriage(t *testing.T) {
	base := DefaultMonthlyLivingCosts()
	married := base.ApplyMarriage(decimal.NewFromFloat(1.5))

	assert.True(t, married.Rent.Equal(d(105000)))
	assert.True(t, married.Utility.Equal(d(22500)))
	assert.True(t, married.LivingGoods.Equal(d(15000)))
	assert.True(t, married.Food.Equal(base.Food), "food is not household-size dependent")
	assert.True(t, married.Other.Equal(base.Other))
	assert.True(t, base.Rent.Equal(d(70000)))
}

func TestLivingCosts_ApplyHousePurchase(t *testing.T) {
	base := DefaultMonthlyLivingCosts().Annualize()
	owned := base.ApplyHousePurchase()

	assert.True(t, owned.Rent.IsZero())
	assert.True(t, owned.Total().Equal(d(1260000)))
	assert.True(t, owned.Inflate(decimal.NewFromFloat(0.02)).Rent.IsZero(), "rent stays at zero after inflation")
	assert.False(t, base.Rent.IsZero())
}

func TestLivingCosts_Categories(t *testing.T) {
	cats := DefaultMonthlyLivingCosts().Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"food", "rent", "utility", "living_goods", "other"}, names)
}
