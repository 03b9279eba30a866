package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// fieldsPerRecord is the persisted line shape:
// <username> <password> <packageCode> <unitPrice> <ticketCount>
// Package code 0 with zero price and zero tickets means no booking; the
// destination name is re-derived from the catalog so multi-word destinations
// round-trip safely.
const fieldsPerRecord = 5

// AccountRepository holds every account in insertion order and mirrors the
// whole collection to a flat file after each mutation. A username index keeps
// lookups O(1) while the slice preserves file order.
type AccountRepository struct {
	mu       sync.RWMutex
	path     string
	accounts []*domain.Account
	index    map[string]int
	strategy retry.Strategy
}

// New opens the repository at path and loads any existing records. A missing
// or empty file is a normal first run, not an error.
func New(path string) (*AccountRepository, error) {
	r := &AccountRepository{
		path:  path,
		index: make(map[string]int),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
	}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return r, nil
}

func (r *AccountRepository) load() error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		account, err := parseRecord(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, ok := r.index[account.Username]; ok {
			return fmt.Errorf("line %d: duplicate username %q", line, account.Username)
		}
		r.index[account.Username] = len(r.accounts)
		r.accounts = append(r.accounts, account)
	}
	return sc.Err()
}

func parseRecord(text string) (*domain.Account, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerRecord {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(fields))
	}

	code, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("package code: %w", err)
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, fmt.Errorf("unit price: %w", err)
	}
	tickets, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("ticket count: %w", err)
	}

	account := &domain.Account{
		Username: fields[0],
		Password: fields[1],
	}
	if code == 0 {
		if price != 0 || tickets != 0 {
			return nil, fmt.Errorf("partial booking state: code=0 price=%v tickets=%d", price, tickets)
		}
		return account, nil
	}

	pkg, err := domain.PackageByCode(code)
	if err != nil {
		return nil, fmt.Errorf("package code %d: %w", code, err)
	}
	if price <= 0 || tickets <= 0 {
		return nil, fmt.Errorf("partial booking state: code=%d price=%v tickets=%d", code, price, tickets)
	}
	account.Booking = &domain.Booking{
		PackageCode: pkg.Code,
		Destination: pkg.Destination,
		UnitPrice:   price,
		Tickets:     tickets,
	}
	return account, nil
}

// saveLocked rewrites the whole file from the in-memory collection. Callers
// must hold at least the read lock. The write goes to a temp file first and is
// renamed into place so a crash mid-write cannot truncate existing records.
func (r *AccountRepository) saveLocked() error {
	var sb strings.Builder
	for _, a := range r.accounts {
		code, price, tickets := 0, 0.0, 0
		if a.Booking != nil {
			code = a.Booking.PackageCode
			price = a.Booking.UnitPrice
			tickets = a.Booking.Tickets
		}
		fmt.Fprintf(&sb, "%s %s %d %s %d\n",
			a.Username, a.Password, code,
			strconv.FormatFloat(price, 'f', -1, 64), tickets,
		)
	}

	write := func() error {
		dir := filepath.Dir(r.path)
		tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp*")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		if _, err = tmp.WriteString(sb.String()); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write accounts: %w", err)
		}
		if err = tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("close temp file: %w", err)
		}
		if err = os.Rename(tmp.Name(), r.path); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("replace accounts file: %w", err)
		}
		return nil
	}

	return retry.Do(write, r.strategy)
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[account.Username]; ok {
		return domain.ErrUsernameTaken
	}

	r.index[account.Username] = len(r.accounts)
	r.accounts = append(r.accounts, account.Clone())

	if err := r.saveLocked(); err != nil {
		// roll back so memory and disk stay in step
		r.accounts = r.accounts[:len(r.accounts)-1]
		delete(r.index, account.Username)
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.accounts[i].Clone(), nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, len(r.accounts))
	for i, a := range r.accounts {
		out[i] = a.Clone()
	}
	return out, nil
}

func (r *AccountRepository) SetBooking(ctx context.Context, username string, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	prev := r.accounts[i].Booking
	if booking != nil {
		b := *booking
		r.accounts[i].Booking = &b
	} else {
		r.accounts[i].Booking = nil
	}

	if err := r.saveLocked(); err != nil {
		r.accounts[i].Booking = prev
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

func (r *AccountRepository) SetPassword(ctx context.Context, username, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	prev := r.accounts[i].Password
	r.accounts[i].Password = password

	if err := r.saveLocked(); err != nil {
		r.accounts[i].Password = prev
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}
