package appmgr

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EventTypes lists the subscription event types the app manager accepts
var EventTypes = []string{"created", "deleted", "all"}

var eventTypesAny = func() []interface{} {
	result := make([]interface{}, len(EventTypes))
	for i, s := range EventTypes {
		result[i] = s
	}
	return result
}()

// objectNamePattern matches cluster object names: lowercase start,
// then lowercase alphanumerics, "-", or "."
var objectNamePattern = regexp.MustCompile(`^[a-z][-a-z0-9.]*$`)

// XappDescriptor is the request body for deploying an xApp.
// Optional override fields are omitted when empty.
type XappDescriptor struct {
	XappName     string          `json:"xappName"`
	HelmVersion  string          `json:"helmVersion,omitempty"`
	ReleaseName  string          `json:"releaseName,omitempty"`
	Namespace    string          `json:"namespace,omitempty"`
	OverrideFile json.RawMessage `json:"overrideFile,omitempty"`
	TargetHost   string          `json:"targetHost,omitempty"`
}

// Validate checks the descriptor before it is sent
func (d *XappDescriptor) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.XappName, validation.Required.Error("xApp name is required")),
	)
}

// SubscriptionData carries the subscription fields under the Data wrapper
type SubscriptionData struct {
	TargetURL  string `json:"targetUrl"`
	EventType  string `json:"eventType"`
	MaxRetries int    `json:"maxRetries"`
	RetryTimer int    `json:"retryTimer"`
}

// SubscriptionRequest is the body for subscription add and modify
type SubscriptionRequest struct {
	Data SubscriptionData `json:"Data"`
}

// Validate checks the subscription fields against the app manager's rules
func (s *SubscriptionData) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.TargetURL,
			validation.Required.Error("target URL is required"),
			validation.By(validateHTTPURL)),
		validation.Field(&s.EventType,
			validation.Required.Error("event type is required"),
			validation.In(eventTypesAny...).Error(
				fmt.Sprintf("must be one of %v", EventTypes))),
		validation.Field(&s.MaxRetries,
			validation.Min(0).Error("must be a non-negative integer")),
		validation.Field(&s.RetryTimer,
			validation.Min(0).Error("must be a non-negative integer")),
	)
}

func validateHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

// ConfigMetadata names the config object an XAppConfig applies to
type ConfigMetadata struct {
	Name       string `json:"name"`
	ConfigName string `json:"configName"`
	Namespace  string `json:"namespace"`
}

// Validate checks all three names against the object-naming pattern
func (m *ConfigMetadata) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("xApp name is required"),
			validation.Match(objectNamePattern).Error("invalid xApp name")),
		validation.Field(&m.ConfigName,
			validation.Required.Error("config-map name is required"),
			validation.Match(objectNamePattern).Error("invalid config-map name")),
		validation.Field(&m.Namespace,
			validation.Required.Error("namespace is required"),
			validation.Match(objectNamePattern).Error("invalid namespace")),
	)
}

// XAppConfig is the body for config add and modify. Descriptor holds the
// config schema and Config the config data, both opaque JSON documents.
type XAppConfig struct {
	Metadata   ConfigMetadata  `json:"metadata"`
	Descriptor json.RawMessage `json:"descriptor,omitempty"`
	Config     json.RawMessage `json:"config,omitempty"`
}

// ConfigDeleteRequest is the body for config delete; only the metadata
// member identifies the object to remove.
type ConfigDeleteRequest struct {
	Metadata ConfigMetadata `json:"metadata"`
}
