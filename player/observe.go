package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/anisan-cli/reel/log"
)

// observedProperties are subscribed in order; the observe id is index+1.
var observedProperties = []string{
	"time-pos",
	"duration",
	"pause",
	"volume",
	"mute",
	"speed",
	"fullscreen",
	"eof-reached",
}

// observer turns mpv property-change notifications into events. mpv only
// notifies the client that issued observe_property, so subscription and
// reading share one persistent connection.
type observer struct {
	socketPath string
	listener   Listener

	mu      sync.Mutex
	conn    net.Conn
	stopped bool
	done    chan struct{}
}

func newObserver(socketPath string, listener Listener) *observer {
	return &observer{
		socketPath: socketPath,
		listener:   listener,
		done:       make(chan struct{}),
	}
}

// Start subscribes to every observed property and begins dispatching.
func (o *observer) Start() error {
	conn, err := net.Dial("unix", o.socketPath)
	if err != nil {
		return fmt.Errorf("observer connect: %w", err)
	}

	encoder := json.NewEncoder(conn)
	for i, name := range observedProperties {
		if err := encoder.Encode(ipcCommand{Command: []any{"observe_property", i + 1, name}}); err != nil {
			_ = conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	o.mu.Lock()
	o.conn = conn
	o.mu.Unlock()

	go o.readLoop(conn)

	log.WithField("socket", o.socketPath).Debugf("observing %v", observedProperties)
	return nil
}

// Stop closes the connection and waits until no further event can be dispatched.
func (o *observer) Stop() {
	o.mu.Lock()
	if o.stopped || o.conn == nil {
		o.stopped = true
		o.mu.Unlock()
		return
	}
	o.stopped = true
	_ = o.conn.Close()
	o.mu.Unlock()

	<-o.done
}

func (o *observer) isStopped() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stopped
}

func (o *observer) readLoop(conn net.Conn) {
	defer close(o.done)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		event, ok := translateEvent(scanner.Bytes())
		if !ok || o.isStopped() {
			continue
		}

		if o.listener != nil {
			o.listener(event)
		}
	}

	if err := scanner.Err(); err != nil && !o.isStopped() {
		log.Warnf("mpv observer read error: %v", err)
	}
}

// translateEvent maps one mpv message onto an Event. Replies, unrelated
// events and properties without a value yet are dropped.
func translateEvent(line []byte) (Event, bool) {
	var msg struct {
		Event string `json:"event"`
		Name  string `json:"name"`
		Data  any    `json:"data"`
	}

	if err := json.Unmarshal(line, &msg); err != nil || msg.Event != "property-change" {
		return Event{}, false
	}

	number, isNumber := msg.Data.(float64)
	flag, isFlag := msg.Data.(bool)

	switch {
	case msg.Name == "time-pos" && isNumber:
		return Event{Kind: EventTimeUpdate, Value: number}, true
	case msg.Name == "duration" && isNumber:
		return Event{Kind: EventDurationKnown, Value: number}, true
	case msg.Name == "pause" && isFlag:
		if flag {
			return Event{Kind: EventPaused}, true
		}
		return Event{Kind: EventPlaying}, true
	case msg.Name == "volume" && isNumber:
		return Event{Kind: EventVolumeChange, Value: number / 100}, true
	case msg.Name == "mute" && isFlag:
		return Event{Kind: EventMuteChange, Flag: flag}, true
	case msg.Name == "speed" && isNumber:
		return Event{Kind: EventRateChange, Value: number}, true
	case msg.Name == "fullscreen" && isFlag:
		return Event{Kind: EventFullscreenChange, Flag: flag}, true
	case msg.Name == "eof-reached" && isFlag && flag:
		// End of content reads as a pause.
		return Event{Kind: EventPaused}, true
	}

	return Event{}, false
}
