package smsgateway

// SendRequest тело запроса на отправку сообщения
type SendRequest struct {
	To     string `json:"to"`
	Body   string `json:"body"`
	Sender string `json:"sender,omitempty"`
}

// SendResponse ответ шлюза
type SendResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
