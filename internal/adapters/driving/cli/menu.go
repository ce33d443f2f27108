package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

const (
	msgInvalidChoice = "Invalid choice. Try again."
	msgInvalidMark   = "Invalid mark. Must be integer between 0-100."
	msgNotFound      = "Student not found."
	msgInvalidLogin  = "Invalid credentials"
	msgCreated       = "Database file not found. Creating new database."
	msgSaved         = "Changes saved to database."
	msgUpdated       = "Marks updated successfully!"
	msgExiting       = "Exiting system..."
	promptChoice     = "Enter your choice: "
)

// menu drives the interactive main, teacher and public loops for one session.
type menu struct {
	svc    *Services
	sess   *domain.Session
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func runMenu(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := svc.Records.Open(ctx)
	if err != nil {
		return err
	}

	m := &menu{
		svc:    svc,
		sess:   sess,
		in:     cmd.InOrStdin(),
		reader: bufio.NewReader(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}
	if sess.Created {
		m.println(msgCreated)
		m.println(msgSaved)
	}

	err = m.mainLoop(ctx)
	if errors.Is(err, io.EOF) {
		logger.Debug("Input closed, leaving menu")
		return nil
	}
	return err
}

func (m *menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	return readInput(m.reader)
}

func (m *menu) choice() (string, error) {
	input, err := m.ask(promptChoice)
	return strings.TrimSpace(input), err
}

func (m *menu) mainLoop(ctx context.Context) error {
	for {
		m.println("\n=== MAIN MENU ===")
		m.println("1. Teacher Login")
		m.println("2. Public Marks View")
		m.println("3. Exit System")

		choice, err := m.choice()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			subject, err := m.login(ctx)
			if err != nil {
				return err
			}
			if subject != "" {
				if err := m.teacherLoop(ctx, subject); err != nil {
					return err
				}
			}
		case "2":
			if err := m.publicLoop(ctx); err != nil {
				return err
			}
		case "3":
			m.println(msgExiting)
			return nil
		default:
			m.println(msgInvalidChoice)
		}
	}
}

// login returns the teacher's subject, or "" when the credentials were rejected.
func (m *menu) login(ctx context.Context) (string, error) {
	username, err := m.ask("Enter your username: ")
	if err != nil {
		return "", err
	}
	fmt.Fprint(m.out, "Enter your password: ")
	secret, hidden, err := readSecret(m.in, m.reader)
	if hidden {
		m.println()
	}
	if err != nil {
		return "", err
	}

	subject, err := m.svc.Auth.Login(ctx, m.sess, username, secret)
	if errors.Is(err, domain.ErrAuthInvalid) {
		m.println(msgInvalidLogin)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return subject, nil
}

func (m *menu) teacherLoop(ctx context.Context, subject string) error {
	defer m.svc.Auth.Logout(ctx, m.sess)

	for {
		m.println("\nMarks Management System (Teacher Mode)")
		fmt.Fprintf(m.out, "Logged in as %s (%s)\n", m.sess.Teacher.Username, subject)
		m.println("1. Update marks")
		m.println("2. View marks (my subject)")
		m.println("3. View all marks")
		m.println("4. Logout")

		choice, err := m.choice()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.updateMarks(ctx, subject)
		case "2":
			err = m.viewSubject(ctx, subject)
		case "3":
			err = m.viewAll(ctx)
		case "4":
			return nil
		default:
			m.println(msgInvalidChoice)
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) publicLoop(ctx context.Context) error {
	for {
		m.println("\nMarks Management System (Public View)")
		m.println("1. View all marks")
		m.println("2. Exit")

		choice, err := m.choice()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := m.viewPublic(ctx); err != nil {
				return err
			}
		case "2":
			return nil
		default:
			m.println(msgInvalidChoice)
		}
	}
}

func (m *menu) updateMarks(ctx context.Context, subject string) error {
	rows, err := m.svc.Reports.View(ctx, m.sess, subject)
	if err != nil && !errors.Is(err, domain.ErrNoRecords) {
		return err
	}
	renderUpdateCandidates(m.out, subject, rows)

	roll, err := m.ask("\nEnter student roll number to update: ")
	if err != nil {
		return err
	}
	raw, err := m.ask(fmt.Sprintf("Enter new %s mark (0-100): ", subject))
	if err != nil {
		return err
	}

	student, err := m.svc.Marks.Update(ctx, m.sess, subject, strings.TrimSpace(roll), raw)
	switch {
	case errors.Is(err, domain.ErrInvalidMark):
		m.println(msgInvalidMark)
		return nil
	case errors.Is(err, domain.ErrNotFound):
		m.println(msgNotFound)
		return nil
	case err != nil:
		return err
	}

	m.println(msgSaved)
	m.println(msgUpdated)
	renderUpdatedRecord(m.out, subject, student)
	return nil
}

func (m *menu) viewSubject(ctx context.Context, subject string) error {
	rows, err := m.svc.Reports.View(ctx, m.sess, subject)
	if errors.Is(err, domain.ErrNoRecords) {
		m.println("\n" + msgNoRecords)
		return nil
	}
	if err != nil {
		return err
	}
	renderSubjectMarks(m.out, rows)
	return nil
}

func (m *menu) viewAll(ctx context.Context) error {
	students, err := m.svc.Reports.Students(ctx, m.sess)
	if errors.Is(err, domain.ErrNoRecords) {
		m.println("\n" + msgNoRecords)
		return nil
	}
	if err != nil {
		return err
	}
	renderAllMarks(m.out, students)
	return nil
}

func (m *menu) viewPublic(ctx context.Context) error {
	standings, err := m.svc.Reports.Leaderboard(ctx, m.sess)
	if errors.Is(err, domain.ErrNoRecords) {
		m.println("\n" + msgNoRecords)
		return nil
	}
	if err != nil {
		return err
	}
	renderLeaderboard(m.out, m.sess.Document.LastUpdated, standings)
	return nil
}
