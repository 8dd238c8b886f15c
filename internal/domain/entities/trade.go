package entities

// Trade is the service category a job belongs to and a technician offers.
type Trade string

const (
	TradePlumber     Trade = "plumber"
	TradeElectrician Trade = "electrician"
	TradeHVAC        Trade = "hvac"
	TradeCleaning    Trade = "cleaning"
	TradePool        Trade = "pool"
)

var allTrades = map[Trade]struct{}{
	TradePlumber:     {},
	TradeElectrician: {},
	TradeHVAC:        {},
	TradeCleaning:    {},
	TradePool:        {},
}

func (t Trade) Valid() bool {
	_, ok := allTrades[t]
	return ok
}
