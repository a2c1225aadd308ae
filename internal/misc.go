package internal

var (
	currentVersion = "0.1.0"
)

// UserAgent is sent with every request made by HttpClient.
func UserAgent() string {
	return "go-fitbit/" + currentVersion
}
