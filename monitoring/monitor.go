// Package monitoring turns a running set of queues into a small web server,
// so that the occupancy and the boundary flags can be watched from outside
// the process.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/sarchlab/fifosim/fifo"
)

// Monitor serves the state of registered queues over HTTP. The HTTP handlers
// never touch the queues themselves; they serve snapshots refreshed by the
// stepping loop through Sample, so serving does not race with stepping.
type Monitor struct {
	queues     []fifo.Queue
	portNumber int
	url        string

	lock      sync.RWMutex
	snapshots map[string]queueStatusRsp
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		snapshots: make(map[string]queueStatusRsp),
	}
}

// WithPortNumber sets the port number of the monitor. Ports below 1000 are
// rejected and a random port is used instead.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterQueue registers a queue to be monitored. Queues must be registered
// before the server starts.
func (m *Monitor) RegisterQueue(q fifo.Queue) {
	m.queues = append(m.queues, q)

	m.lock.Lock()
	m.snapshots[q.Name()] = snapshotOf(q)
	m.lock.Unlock()
}

// Sample refreshes the served state of all registered queues. Only the
// goroutine that steps the queues may call it.
func (m *Monitor) Sample() {
	m.lock.Lock()
	for _, q := range m.queues {
		m.snapshots[q.Name()] = snapshotOf(q)
	}
	m.lock.Unlock()
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/queues", m.listQueues)
	r.HandleFunc("/api/queue/{name}", m.queueStatus)
	r.HandleFunc("/api/resource", m.listResources)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring queues with %s\n", m.url)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()
}

// OpenWebPage opens the monitor page in the default browser. StartServer
// must have been called first.
func (m *Monitor) OpenWebPage() {
	err := browser.OpenURL(m.url + "/api/queues")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

func (m *Monitor) listQueues(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.queues))
	for _, q := range m.queues {
		names = append(names, q.Name())
	}

	writeJSON(w, names)
}

type queueStatusRsp struct {
	Name      string `json:"name"`
	Occupancy int    `json:"occupancy"`
	Capacity  int    `json:"capacity"`
	Full      bool   `json:"full"`
	Empty     bool   `json:"empty"`
}

func snapshotOf(q fifo.Queue) queueStatusRsp {
	return queueStatusRsp{
		Name:      q.Name(),
		Occupancy: q.Occupancy(),
		Capacity:  q.Capacity(),
		Full:      q.Occupancy() == q.Capacity(),
		Empty:     q.Occupancy() == 0,
	}
}

func (m *Monitor) queueStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	m.lock.RLock()
	rsp, ok := m.snapshots[name]
	m.lock.RUnlock()

	if !ok {
		http.Error(w, "queue not found", http.StatusNotFound)
		return
	}

	writeJSON(w, rsp)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemorySize uint64  `json:"memorySize"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
