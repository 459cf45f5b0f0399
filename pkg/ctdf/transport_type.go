package ctdf

type Mode string

//goland:noinspection GoUnusedConst
const (
	ModeWalking     Mode = "walking"
	ModeBike        Mode = "bike"
	ModeCar         Mode = "car"
	ModeRidesharing Mode = "ridesharing"
	ModeTaxi        Mode = "taxi"
	ModeBus         Mode = "bus"
	ModeRail        Mode = "rail"
	ModeMetro       Mode = "metro"
	ModeTram        Mode = "tram"
)

// AugmentableModes are the modes a routing engine placeholder section can be filled with
var AugmentableModes = []Mode{
	ModeRidesharing,
}
