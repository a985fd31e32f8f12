package comms

import (
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Message is the JSON envelope for a game event.
type Message struct {
	Type     string `json:"type"`
	Contents []byte `json:"contents"`
}

// Convert an event struct into a Message, named after the event's type
func ToMessage(contents interface{}) Message {
	jsonContents, _ := json.Marshal(contents)
	t := reflect.TypeOf(contents)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return Message{
		Type:     t.Name(),
		Contents: jsonContents,
	}
}

// Decode reads a Message's contents back into an event struct.
func Decode(message Message, out interface{}) error {
	var contents map[string]interface{}
	if err := json.Unmarshal(message.Contents, &contents); err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(contents)
}

// Error reported alongside the events, e.g. when input ends mid-game
type ErrorResponse struct {
	Reason string `json:"reason"`
}
