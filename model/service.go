// model/service.go
package model

// ServiceDescriptor maps a logical service name to its base URL. Immutable
// after startup load.
type ServiceDescriptor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ServiceList is the response body of GET /services, partitioned into our own
// platform's services and the external partner's services.
type ServiceList struct {
	OurServices      []ServiceDescriptor `json:"our_services"`
	ExternalServices []ServiceDescriptor `json:"external_services"`
}
