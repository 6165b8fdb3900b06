package jetstream

import (
	"strconv"

	"github.com/nats-io/nats.go"
)

// MessageID identifies a delivered message by its stream sequence. It is "-" for
// messages that did not come from JetStream.
func MessageID(msg *nats.Msg) string {
	meta, err := msg.Metadata()
	if err != nil {
		return "-"
	}
	return "seq:" + strconv.FormatUint(meta.Sequence.Stream, 10)
}
