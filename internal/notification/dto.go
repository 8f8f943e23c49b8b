package notification

type NotificationTimeDTO struct {
	Time string `json:"time"`
}
