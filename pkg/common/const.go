package common

const (
	SIGNAL_PATH = "/signal"
)

const (
	MSG_SIGNAL_PUBLISHED = "Signal received and published"
	MSG_SIGNAL_FAILED    = "Error publishing signal"
)

const (
	KEY_LOG_REQUEST_ID = "request_id"
	KEY_LOG_CHANNEL    = "channel"
	KEY_LOG_PAYLOAD    = "payload"
)
