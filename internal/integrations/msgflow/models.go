package msgflow

// flowRequest тело запроса к MSG91 flow API
type flowRequest struct {
	TemplateID string          `json:"template_id"`
	ShortURL   string          `json:"short_url"`
	Recipients []flowRecipient `json:"recipients"`
}

// flowRecipient получатель с переменными шаблона
// Var1 несёт сериализованное бронирование
type flowRecipient struct {
	Mobiles string `json:"mobiles"`
	Var1    string `json:"var1"`
}
