package cupi

// Ref is a minimal name/identifier pair for a provisioned object.
// Most listing helpers return these rather than full records.
type Ref struct {
	Name     string `json:"name"`
	ObjectID string `json:"object_id"`
}

// ConnectionLocation represents a Unity Connection location. The owner
// location ObjectId is required when creating schedules.
type ConnectionLocation struct {
	ObjectID    string `json:"ObjectId"`
	DisplayName string `json:"DisplayName"`
	HostAddress string `json:"HostAddress"`
	URI         string `json:"URI"`
}

// VMSServer represents a voice messaging server node
type VMSServer struct {
	ObjectID           string `json:"ObjectId"`
	ServerName         string `json:"ServerName"`
	IPAddress          string `json:"IpAddress"`
	ServerState        string `json:"ServerState"`
	ServerDisplayState string `json:"ServerDisplayState"`
	ClusterMemberID    string `json:"ClusterMemberId"`
	HostName           string `json:"HostName"`
	URI                string `json:"URI"`
}

// ProductVersion is the version record from /vmrest/version/product
type ProductVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerInfo bundles the node record and product version retrieved by
// GetServerInfo.
type ServerInfo struct {
	Server  VMSServer      `json:"server"`
	Product ProductVersion `json:"product"`
}

// Schedule represents a Unity Connection schedule
type Schedule struct {
	ObjectID                string `json:"ObjectId"`
	DisplayName             string `json:"DisplayName"`
	OwnerLocationObjectID   string `json:"OwnerLocationObjectId"`
	OwnerSubscriberObjectID string `json:"OwnerSubscriberObjectId,omitempty"`
	IsHoliday               bool   `json:"IsHoliday,string,omitempty"`
	Undeletable             bool   `json:"Undeletable,string,omitempty"`
	URI                     string `json:"URI"`
}

// Ref returns the schedule's name/identifier pair.
func (s Schedule) Ref() Ref {
	return Ref{Name: s.DisplayName, ObjectID: s.ObjectID}
}

// ScheduleSet represents a schedule set, the container object CUPI
// creates schedules through
type ScheduleSet struct {
	ObjectID             string `json:"ObjectId"`
	DisplayName          string `json:"DisplayName"`
	OwnerLocationObjectID string `json:"OwnerLocationObjectId"`
	URI                  string `json:"URI"`
}

// Ref returns the schedule set's name/identifier pair.
func (s ScheduleSet) Ref() Ref {
	return Ref{Name: s.DisplayName, ObjectID: s.ObjectID}
}

// CallHandlerTemplate represents a call handler template
type CallHandlerTemplate struct {
	ObjectID    string `json:"ObjectId"`
	DisplayName string `json:"DisplayName"`
	URI         string `json:"URI"`
}

// User represents a Unity Connection user (subscriber)
type User struct {
	ObjectID            string `json:"ObjectId"`
	Alias               string `json:"Alias"`
	DisplayName         string `json:"DisplayName"`
	FirstName           string `json:"FirstName"`
	LastName            string `json:"LastName"`
	DtmfAccessID        string `json:"DtmfAccessId"`
	CallHandlerObjectID string `json:"CallHandlerObjectId"`
	LocationObjectID    string `json:"LocationObjectId"`
	URI                 string `json:"URI"`
}

// Ref returns the user's alias/identifier pair.
func (u User) Ref() Ref {
	return Ref{Name: u.Alias, ObjectID: u.ObjectID}
}

// UserTemplate represents a user template, used when adding users
type UserTemplate struct {
	ObjectID    string `json:"ObjectId"`
	Alias       string `json:"Alias"`
	DisplayName string `json:"DisplayName"`
	URI         string `json:"URI"`
}

// Ref returns the template's alias/identifier pair.
func (t UserTemplate) Ref() Ref {
	return Ref{Name: t.Alias, ObjectID: t.ObjectID}
}

// collection response envelopes

type connectionLocationCollection struct {
	Total     Total                          `json:"@total"`
	Locations memberList[ConnectionLocation] `json:"ConnectionLocation"`
}

type vmsServerCollection struct {
	Total   Total                 `json:"@total"`
	Servers memberList[VMSServer] `json:"VmsServer"`
}

type scheduleCollection struct {
	Total     Total                `json:"@total"`
	Schedules memberList[Schedule] `json:"Schedule"`
}

type scheduleSetCollection struct {
	Total        Total                   `json:"@total"`
	ScheduleSets memberList[ScheduleSet] `json:"ScheduleSet"`
}

type callHandlerTemplateCollection struct {
	Total     Total                           `json:"@total"`
	Templates memberList[CallHandlerTemplate] `json:"CallhandlerTemplate"`
}

type userCollection struct {
	Total Total            `json:"@total"`
	Users memberList[User] `json:"User"`
}

type userTemplateCollection struct {
	Total     Total                    `json:"@total"`
	Templates memberList[UserTemplate] `json:"UserTemplate"`
}
