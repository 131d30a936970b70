package dto

type DecideRequest struct {
	CustomerID         string             `json:"customerId"`
	Email              string             `json:"email"`
	PetAdviceCandidate string             `json:"petAdviceCandidate"`
	Items              []OrderLineRequest `json:"items"`
}

type OrderLineRequest struct {
	ProductID         string `json:"productId"`
	RequestedQuantity int    `json:"requestedQuantity"`
}
