package types

// EstimateInput carries a route and parcel size to price.
type EstimateInput struct {
	Origin      string
	Destination string
	Size        string
}

// Quote is a priced route.
type Quote struct {
	Origin      string
	Destination string
	DistanceKm  int
	Size        string
	Price       int
}
