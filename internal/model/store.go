package model

type StoreItemID string

const (
	ItemExtraSpin    StoreItemID = "extra_spin"
	ItemBalanceBoost StoreItemID = "balance_boost"
	ItemJackpotBoost StoreItemID = "jackpot_boost"
	ItemFreeSpins    StoreItemID = "free_spins"
	ItemMysteryPrize StoreItemID = "mystery_prize"
	ItemBonusChance  StoreItemID = "bonus_chance"
)

// StoreItem товар магазина, оплачивается кредитами
type StoreItem struct {
	ID          StoreItemID `yaml:"id"`
	Name        string      `yaml:"name"`
	Cost        int         `yaml:"cost"`
	Amount      int         `yaml:"amount"`
	Description string      `yaml:"description"`
}

type PrizeKind string

const (
	PrizeCoins     PrizeKind = "coins"
	PrizeCredits   PrizeKind = "credits"
	PrizeExtraSpin PrizeKind = "extra_spin"
)

// PurchaseResult итог покупки
type PurchaseResult struct {
	Item        StoreItem
	PrizeKind   PrizeKind
	PrizeAmount int
	FreeSpins   []FreeSpinRound
	FreeSpinWin int
	Events      []Event
	State       PlayerState
	NextBet     int
	Phase       Phase
}

// Призы загадочного приза: монеты и кредиты в диапазоне [MysteryMin, MysteryMax]
const (
	MysteryMin = 50
	MysteryMax = 100
)

// DefaultStoreItems встроенный каталог в порядке показа
func DefaultStoreItems() []StoreItem {
	return []StoreItem{
		{ID: ItemExtraSpin, Name: "Extra Spin", Cost: 50, Amount: 1, Description: "One spin without paying the bet"},
		{ID: ItemBalanceBoost, Name: "Balance Boost", Cost: 100, Amount: 100, Description: "Adds coins to the balance"},
		{ID: ItemJackpotBoost, Name: "Jackpot Boost", Cost: 200, Amount: 500, Description: "Grows the progressive jackpot"},
		{ID: ItemFreeSpins, Name: "Free Spins", Cost: 250, Amount: 5, Description: "Plays free spins at the current bet right away"},
		{ID: ItemMysteryPrize, Name: "Mystery Prize", Cost: 75, Description: "Coins, credits or an extra spin"},
		{ID: ItemBonusChance, Name: "Bonus Spin Chance", Cost: 100, Description: "Next spin triggers free spins on any wild row"},
	}
}

// FindStoreItem ищет позицию каталога по идентификатору
func FindStoreItem(items []StoreItem, id StoreItemID) (StoreItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return StoreItem{}, false
}

// Has проверяет, произошло ли событие
func (r *PurchaseResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
