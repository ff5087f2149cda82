package cupi

import (
	"strings"
)

// BuildBaseURL returns the /vmrest base URL for a Unity Connection
// host. The host may carry a port.
func BuildBaseURL(scheme, host string) string {
	host = strings.TrimSuffix(host, "/")
	return scheme + "://" + host + "/vmrest"
}

// BuildVMRestURL joins the base URL with a resource path, avoiding a
// double slash between the two.
func BuildVMRestURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return baseURL + path
}

// BuildConnectionLocationsURL returns the connection locations URL
func BuildConnectionLocationsURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/locations/connectionlocations")
}

// BuildVersionURL returns the product version URL
func BuildVersionURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/version/product")
}

// BuildVMSServersURL returns the voice messaging servers URL
func BuildVMSServersURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/vmsservers")
}

// BuildSchedulesURL returns the schedules collection URL
func BuildSchedulesURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/schedules")
}

// BuildScheduleSetsURL returns the schedule sets collection URL
func BuildScheduleSetsURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/schedulesets")
}

// BuildUsersURL returns the users collection URL
func BuildUsersURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/users")
}

// BuildUserTemplatesURL returns the user templates collection URL
func BuildUserTemplatesURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/usertemplates")
}

// BuildCallHandlerTemplatesURL returns the call handler templates URL
func BuildCallHandlerTemplatesURL(baseURL string) string {
	return BuildVMRestURL(baseURL, "/callhandlertemplates")
}
