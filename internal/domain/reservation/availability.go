package reservation

type Availability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
	Booked    int `json:"booked"`
}

type TableStatus struct {
	TableID     uint `json:"tableId"`
	TableNumber int  `json:"tableNumber"`
	Capacity    int  `json:"capacity"`
	IsBooked    bool `json:"isBooked"`
}
