package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type AccountSvc interface {
	Register(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}

type BookingSvc interface {
	Book(ctx context.Context, username string, packageCode, tickets int) (*domain.Booking, error)
	Cancel(ctx context.Context, username string) (*domain.Refund, error)
	Check(ctx context.Context, username string) (*domain.BookingSummary, error)
}

type SessionSvc interface {
	Begin(username string) *domain.Session
	Current() (*domain.Session, bool)
	Touch()
	End() bool
}

// CLI drives the menu loop: an anonymous menu until login, then the
// account menu until logout or exit. All input and output go through the
// injected reader and writer.
type CLI struct {
	accounts AccountSvc
	bookings BookingSvc
	sessions SessionSvc
	in       *bufio.Scanner
	out      io.Writer
	logger   logger.Logger
}

func New(
	accounts AccountSvc,
	bookings BookingSvc,
	sessions SessionSvc,
	in io.Reader,
	out io.Writer,
	logger logger.Logger,
) *CLI {
	return &CLI{
		accounts: accounts,
		bookings: bookings,
		sessions: sessions,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// Run loops until the user exits, input ends, or ctx is cancelled.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "\nWelcome to Muhammad Travels!")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if c.step(ctx) {
			return nil
		}
	}
}

// step shows one menu round. Returns true when the loop should stop.
func (c *CLI) step(ctx context.Context) (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.LogAttrs(ctx, logger.ErrorLevel, "panic recovered",
				logger.Any("error", r),
				logger.String("stack", string(debug.Stack())),
			)
			fmt.Fprintln(c.out, "\nSomething went wrong. Please try again.")
		}
	}()

	if sess, ok := c.sessions.Current(); ok {
		return c.accountMenu(ctx, sess.Username)
	}
	return c.mainMenu(ctx)
}

func (c *CLI) mainMenu(ctx context.Context) bool {
	fmt.Fprintln(c.out, "\n1. Add User\n2. Login\n3. Show Packages\n4. Exit")

	choice, ok := c.prompt("\nEnter your selection: ")
	if !ok {
		return true
	}

	switch choice {
	case "1":
		c.addUser(ctx)
	case "2":
		c.login(ctx)
	case "3":
		renderPackages(c.out)
	case "4":
		return true
	default:
		fmt.Fprintln(c.out, "\nInvalid input! Please select a number from the menu.")
	}
	return false
}

func (c *CLI) accountMenu(ctx context.Context, username string) bool {
	fmt.Fprintf(c.out, "\nWelcome %s!\n", username)
	fmt.Fprintln(c.out, "\n1. Book\n2. Check Total\n3. Cancel Booking\n4. Change Password\n5. Logout\n6. Show Packages\n7. Exit")

	choice, ok := c.prompt("\nEnter your choice: ")
	if !ok {
		return true
	}
	c.sessions.Touch()

	switch choice {
	case "1":
		c.book(ctx, username)
	case "2":
		c.checkTotal(ctx, username)
	case "3":
		c.cancel(ctx, username)
	case "4":
		c.changePassword(ctx, username)
	case "5":
		if c.sessions.End() {
			fmt.Fprintln(c.out, "\nYou have been successfully logged out.")
		}
	case "6":
		renderPackages(c.out)
	case "7":
		return true
	default:
		fmt.Fprintln(c.out, "\nInvalid choice! Please try again.")
	}
	return false
}

func (c *CLI) addUser(ctx context.Context) {
	username, ok := c.prompt("\nEnter new username: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Enter new password: ")
	if !ok {
		return
	}

	if _, err := c.accounts.Register(ctx, domain.CreateAccountInput{
		Username: username,
		Password: password,
	}); err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "\nUser account created successfully!")
}

func (c *CLI) login(ctx context.Context) {
	username, ok := c.prompt("\nEnter Username: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Enter Password: ")
	if !ok {
		return
	}

	if _, err := c.accounts.Authenticate(ctx, username, password); err != nil {
		c.printError(err)
		return
	}

	c.sessions.Begin(username)
	fmt.Fprintln(c.out, "\nLogin successful!")
}

func (c *CLI) book(ctx context.Context, username string) {
	renderPackages(c.out)

	code, ok := c.promptInt("\nEnter the tour code number: ")
	if !ok {
		return
	}

	confirm, ok := c.prompt("\nConfirm booking?\n1. Yes\n2. No\n\nEnter your choice: ")
	if !ok || confirm != "1" {
		return
	}

	tickets, ok := c.promptInt("\nEnter the number of tickets for booking: ")
	if !ok {
		return
	}

	booking, err := c.bookings.Book(ctx, username, code, tickets)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "\nBooking completed successfully! %d ticket(s) for %s.\n",
		booking.Tickets, booking.Destination)
}

func (c *CLI) checkTotal(ctx context.Context, username string) {
	summary, err := c.bookings.Check(ctx, username)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "\n%d ticket(s) booked for a total of Rs %.0f for destination %s.\n",
		summary.Tickets, summary.Total, summary.Destination)
}

func (c *CLI) cancel(ctx context.Context, username string) {
	refund, err := c.bookings.Cancel(ctx, username)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "\nYour booking for %s (%d ticket(s)) has been cancelled. A refund of Rs %.0f will be processed.\n",
		refund.Destination, refund.Tickets, refund.Amount)
}

func (c *CLI) changePassword(ctx context.Context, username string) {
	current, ok := c.prompt("\nEnter your current password to continue: ")
	if !ok {
		return
	}
	next, ok := c.prompt("Enter your new password: ")
	if !ok {
		return
	}

	if err := c.accounts.ChangePassword(ctx, username, current, next); err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "\nPassword updated successfully!")
}

// prompt writes the text and reads one trimmed line. ok is false once input
// is exhausted.
func (c *CLI) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptInt(text string) (int, bool) {
	raw, ok := c.prompt(text)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(c.out, "\nInvalid input! Please enter a number.")
		return 0, false
	}
	return n, true
}

func (c *CLI) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		fmt.Fprintln(c.out, "\nError: Username already exists!")

	case errors.Is(err, domain.ErrUserNotFound):
		fmt.Fprintln(c.out, "\nUser not found! Please register first.")

	case errors.Is(err, domain.ErrWrongPassword):
		fmt.Fprintln(c.out, "\nWrong Password! Access denied.")

	case errors.Is(err, domain.ErrAlreadyBooked):
		fmt.Fprintln(c.out, "\nYou already have an active booking. Please cancel your previous ticket before booking a new one!")

	case errors.Is(err, domain.ErrInvalidPackageCode):
		fmt.Fprintln(c.out, "\nInvalid tour code number entered!")

	case errors.Is(err, domain.ErrZeroTickets):
		fmt.Fprintln(c.out, "\nAt least one ticket is required for a booking.")

	case errors.Is(err, domain.ErrNoActiveBooking):
		fmt.Fprintln(c.out, "\nNo ticket booked!")

	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(c.out, "\n%s\n", err.Error())

	default:
		c.logger.Error("operation failed",
			logger.String("error", err.Error()),
		)
		fmt.Fprintln(c.out, "\nSomething went wrong. Please try again.")
	}
}
