package constvars

const (
	RegexSlotLabel = `^(0[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`
	RegexMonthKey  = `^\d{4}-(0[1-9]|1[0-2])$`
)
