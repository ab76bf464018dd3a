package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ChangeEmailMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type AvailabilityDecisionMailData struct {
	FullName  string `json:"fullName"`
	WeekStart string `json:"weekStart"`
	Approved  bool   `json:"approved"`
}

type LeaveDecisionMailData struct {
	FullName string `json:"fullName"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Approved bool   `json:"approved"`
}
