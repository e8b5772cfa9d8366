package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"contact_book/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a log id: unix millis (base36), host ipv4 (hex), pid and a
// random suffix (base36).
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool   <-chan string
	stop   chan any
	prefix string
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan any)
	idgen := &IDGenerator{
		stop:   stop,
		prefix: ip.IPv4Hex() + strconv.Itoa(os.Getpid()),
	}
	idgen.pool = idgen.newPool(maxSize)

	return idgen
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

// NewID falls back to generating inline once the generator is stopped.
func (idgen *IDGenerator) NewID() string {
	select {
	case id, ok := <-idgen.pool:
		if ok {
			return id
		}
	case <-idgen.stop:
	}
	return idgen.gen()
}

func (idgen *IDGenerator) gen() string {
	sb := strings.Builder{}
	sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
	sb.WriteString(idgen.prefix)
	sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
	return sb.String()
}

func (idgen *IDGenerator) newPool(size int) <-chan string {
	pool := make(chan string, size)

	go func() {
		defer close(pool)
		for {
			select {
			case <-idgen.stop:
				return
			case pool <- idgen.gen():
			}
		}
	}()

	return pool
}
