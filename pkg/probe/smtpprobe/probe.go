// Package smtpprobe checks whether a mail exchanger accepts a mailbox by
// running the envelope part of an SMTP transaction and stopping before DATA.
//
// Two recipients are tried in one session: the target address and a random
// control address at the same domain. A server that accepts the control
// address accepts everything (catch-all).
package smtpprobe

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/textproto"
	"strconv"
	"time"

	"emailrep/pkg/domain"
	"emailrep/pkg/serrors"
)

const (
	codeServiceReady = 220
	codeOK           = 250
	codeNoMailbox    = 550

	controlLocalPartLength = 20
	controlAlphabet        = "abcdefghijklmnopqrstuvwxyz"
)

// Dialer opens the TCP connection to a mail exchanger.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Options configures a Probe.
type Options struct {
	// Port is the SMTP port of the exchanger.
	Port int
	// Timeout bounds the whole session, dial included.
	Timeout time.Duration
	// HeloName is announced in EHLO/HELO.
	HeloName string
	// Dialer overrides the default net.Dialer.
	Dialer Dialer
	// ControlLocalPart overrides the random control local part generator.
	ControlLocalPart func() string
}

// Probe runs SMTP deliverability checks. It is safe for concurrent use.
type Probe struct {
	opts Options
}

// New creates a Probe.
func New(opts Options) *Probe {
	if opts.Port == 0 {
		opts.Port = 25
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.HeloName == "" {
		opts.HeloName = "localhost"
	}
	if opts.Dialer == nil {
		opts.Dialer = &net.Dialer{}
	}
	if opts.ControlLocalPart == nil {
		opts.ControlLocalPart = RandomLocalPart
	}

	return &Probe{opts: opts}
}

// RandomLocalPart returns 20 random lower-case letters.
func RandomLocalPart() string {
	b := make([]byte, controlLocalPartLength)
	for i := range b {
		b[i] = controlAlphabet[rand.IntN(len(controlAlphabet))] //nolint: gosec
	}

	return string(b)
}

// Classify maps the RCPT reply codes of the target and control recipients to
// deliverability and catch-all flags.
func Classify(targetCode, controlCode int) (deliverable, catchAll bool) {
	switch {
	case targetCode == codeOK && controlCode == codeOK:
		return true, true
	case targetCode == codeNoMailbox && controlCode == codeOK:
		return false, true
	case targetCode == codeOK && controlCode == codeNoMailbox:
		return true, false
	default:
		return false, false
	}
}

// Probe checks address against mxHost. An empty mxHost returns immediately
// without connecting. Any transport or protocol failure yields a zero result
// and an error of kind ErrTimeout or ErrUnavailable.
func (p *Probe) Probe(ctx context.Context, address, mxHost, domainName string) (domain.Deliverability, error) {
	if mxHost == "" {
		return domain.Deliverability{}, serrors.With(serrors.ErrNotFound, "no mail exchanger for %s", domainName)
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	conn, err := p.opts.Dialer.DialContext(ctx, "tcp", net.JoinHostPort(mxHost, strconv.Itoa(p.opts.Port)))
	if err != nil {
		return domain.Deliverability{}, classify(ctx, err, "dial")
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// a cancelled caller unblocks pending reads by closing the connection
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	s := &session{tp: textproto.NewConn(conn)}
	res, err := s.run(p.opts.HeloName, address, p.opts.ControlLocalPart()+"@"+domainName)
	if err != nil {
		return domain.Deliverability{}, classify(ctx, err, "session")
	}

	return res, nil
}

type session struct {
	tp *textproto.Conn
}

func (s *session) run(helo, target, control string) (domain.Deliverability, error) {
	if _, err := s.expect(codeServiceReady, ""); err != nil {
		return domain.Deliverability{}, err
	}

	if _, err := s.expect(codeOK, "EHLO %s", helo); err != nil {
		if !isReply(err) {
			return domain.Deliverability{}, err
		}
		if _, err := s.expect(codeOK, "HELO %s", helo); err != nil {
			return domain.Deliverability{}, err
		}
	}

	if _, err := s.expect(codeOK, "MAIL FROM:<>"); err != nil {
		return domain.Deliverability{}, err
	}

	targetCode, err := s.cmd("RCPT TO:<%s>", target)
	if err != nil {
		return domain.Deliverability{}, err
	}
	controlCode, err := s.cmd("RCPT TO:<%s>", control)
	if err != nil {
		return domain.Deliverability{}, err
	}

	_ = s.tp.PrintfLine("QUIT")

	res := domain.Deliverability{TargetCode: targetCode, ControlCode: controlCode}
	res.Deliverable, res.CatchAll = Classify(targetCode, controlCode)

	return res, nil
}

// cmd sends a command (or only reads when format is empty) and returns the
// reply code whatever it is.
func (s *session) cmd(format string, args ...any) (int, error) {
	if format != "" {
		if err := s.tp.PrintfLine(format, args...); err != nil {
			return 0, err
		}
	}
	code, _, err := s.tp.ReadResponse(0)

	return code, err
}

// expect is cmd that fails with a *textproto.Error on any code but want.
func (s *session) expect(want int, format string, args ...any) (int, error) {
	code, err := s.cmd(format, args...)
	if err != nil {
		return code, err
	}
	if code != want {
		return code, &textproto.Error{Code: code, Msg: "unexpected reply"}
	}

	return code, nil
}

func isReply(err error) bool {
	var te *textproto.Error

	return errors.As(err, &te)
}

func classify(ctx context.Context, err error, step string) error {
	var netErr net.Error
	if ctx.Err() != nil || (errors.As(err, &netErr) && netErr.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "smtp %s", step)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "smtp %s", step)
}
