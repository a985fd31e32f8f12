package comms

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"
)

// Writer streams events as JSON lines, one object per event.
type Writer struct {
	Log *zap.Logger
	enc *json.Encoder
}

func NewWriter(w io.Writer, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{Log: log, enc: json.NewEncoder(w)}
}

// Notify writes the event as {"type": ..., "contents": {...}}.
func (w *Writer) Notify(event interface{}) {
	if err := w.WriteMessage(ToMessage(event)); err != nil {
		w.Log.Error("Unable to write event", zap.Error(err))
	}
}

func (w *Writer) WriteMessage(message Message) error {
	// Unmarshal contents into a map
	var contents map[string]interface{}
	json.Unmarshal(message.Contents, &contents)

	// Write a marshalled map
	data := map[string]interface{}{
		"type":     message.Type,
		"contents": contents,
	}
	return w.enc.Encode(data)
}
