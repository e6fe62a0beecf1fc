package domain

// Airline is a carrier operating flights. Codes are two letters and unique.
type Airline struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Airport codes are IATA three-letter codes and unique.
type Airport struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Aircraft describes an airframe and how its cabin is split between classes.
// Economy is always present; other classes are optional.
type Aircraft struct {
	ID                int64              `json:"id"`
	Model             string             `json:"model"`
	Manufacturer      string             `json:"manufacturer"`
	Capacity          int                `json:"capacity"`
	SeatConfiguration map[CabinClass]int `json:"seatConfiguration"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
