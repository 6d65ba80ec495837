package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/staff-portal-core/internal/domain"
)

// Severity определяет важность уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier показывает мимолётное уведомление; возврата нет, на ход
// выполнения не влияет.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Confirmer задаёт блокирующий вопрос да/нет перед разрушительной операцией
type Confirmer interface {
	Confirm(prompt string) bool
}

// Prompter запрашивает одну строку текста; второй результат false - отмена
type Prompter interface {
	PromptText(prompt string) (string, bool)
}

// Renderer отрисовывает страницу по снимку данных и текущему сеансу
type Renderer interface {
	Render(page string, snapshot domain.Database, principal *domain.Account)
}

// ConsoleUI реализует все интерфейсы-коллабораторы поверх текстовых потоков
type ConsoleUI struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole создаёт консольную реализацию коллабораторов
func NewConsole(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{in: bufio.NewScanner(in), out: out}
}

func (c *ConsoleUI) Notify(message string, severity Severity) {
	fmt.Fprintf(c.out, "[%s] %s\n", severity, message)
}

func (c *ConsoleUI) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

func (c *ConsoleUI) PromptText(prompt string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *ConsoleUI) Render(page string, snapshot domain.Database, principal *domain.Account) {
	who := "anonymous"
	if principal != nil {
		who = principal.Email
	}
	fmt.Fprintf(c.out, "-- page=%s user=%s accounts=%d departments=%d employees=%d requests=%d\n",
		page, who,
		len(snapshot.Accounts), len(snapshot.Departments),
		len(snapshot.Employees), len(snapshot.Requests))
}
