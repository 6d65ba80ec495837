package handler_test

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"testing"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/handler"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/storage"
	"github.com/staff-portal-core/internal/store"
	"github.com/staff-portal-core/internal/ui"
)

type recordingNotifier struct {
	messages   []string
	severities []ui.Severity
}

func (n *recordingNotifier) Notify(message string, severity ui.Severity) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

func (n *recordingNotifier) last() string {
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

type scriptedConfirmer struct {
	answer bool
	calls  int
}

func (c *scriptedConfirmer) Confirm(string) bool {
	c.calls++
	return c.answer
}

type scriptedPrompter struct {
	answers []string
	cancel  bool
}

func (p *scriptedPrompter) PromptText(string) (string, bool) {
	if p.cancel || len(p.answers) == 0 {
		return "", false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, true
}

type portal struct {
	store       *store.Store
	session     *session.Manager
	notifier    *recordingNotifier
	confirmer   *scriptedConfirmer
	prompter    *scriptedPrompter
	navigated   []string
	refreshed   int
	auth        *handler.AuthHandler
	accounts    *handler.AccountHandler
	departments *handler.DepartmentHandler
	employees   *handler.EmployeeHandler
	requests    *handler.RequestHandler
}

func setupPortal(t *testing.T) *portal {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	kv := storage.NewMemory()
	st := store.New(kv, logger)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	sess := session.NewManager(st, kv)

	p := &portal{
		store:     st,
		session:   sess,
		notifier:  &recordingNotifier{},
		confirmer: &scriptedConfirmer{answer: true},
		prompter:  &scriptedPrompter{},
	}
	navigate := func(token string) { p.navigated = append(p.navigated, token) }
	refresh := func() { p.refreshed++ }

	accountService := service.NewAccountService(st, sess)
	p.auth = handler.NewAuthHandler(accountService, sess, p.notifier, navigate, logger)
	p.accounts = handler.NewAccountHandler(accountService, sess, p.notifier, p.confirmer, p.prompter, refresh, logger)
	p.departments = handler.NewDepartmentHandler(service.NewDepartmentService(st), p.notifier, p.confirmer, p.prompter, refresh, logger)
	p.employees = handler.NewEmployeeHandler(service.NewEmployeeService(st), p.notifier, p.confirmer, refresh, logger)
	p.requests = handler.NewRequestHandler(service.NewRequestService(st), sess, p.notifier, refresh, logger)

	return p
}

func (p *portal) loginAdmin(t *testing.T) {
	if _, err := p.session.Authenticate(context.Background(), "admin@example.com", "admin123"); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
}

func (p *portal) registerAndVerify(t *testing.T, email string) {
	ctx := context.Background()
	p.auth.Register(ctx, &dto.RegisterForm{FirstName: "Jo", LastName: "Lee", Email: email, Password: "secret1"})
	p.auth.Verify(ctx)
}

func lastToken(p *portal) string {
	if len(p.navigated) == 0 {
		return ""
	}
	return p.navigated[len(p.navigated)-1]
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	p.auth.Register(ctx, &dto.RegisterForm{FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Password: "secret1"})

	acc, err := p.store.FindAccountByEmail("jo@x.com")
	if err != nil {
		t.Fatalf("account was not created: %v", err)
	}
	if acc.Role != domain.RoleUser || acc.Verified {
		t.Errorf("registration must create an unverified User account, got %+v", acc)
	}
	if lastToken(p) != "#/verify-email" {
		t.Errorf("expected redirect to verify-email, got %q", lastToken(p))
	}

	// Вход до подтверждения отклоняется
	p.auth.Login(ctx, &dto.LoginForm{Email: "jo@x.com", Password: "secret1"})
	if p.session.Current() != nil {
		t.Fatalf("unverified account must not login")
	}
	if p.notifier.last() != "Please verify your email first." {
		t.Errorf("expected unverified warning, got %q", p.notifier.last())
	}

	p.auth.Verify(ctx)
	if acc, _ := p.store.FindAccountByEmail("jo@x.com"); !acc.Verified {
		t.Fatalf("verification did not mark the account")
	}
	if lastToken(p) != "#/login" {
		t.Errorf("expected redirect to login, got %q", lastToken(p))
	}

	p.auth.Login(ctx, &dto.LoginForm{Email: "jo@x.com", Password: "secret1"})
	if p.session.Current() == nil || p.session.Current().Email != "jo@x.com" {
		t.Fatalf("login after verification must open the session")
	}
	if lastToken(p) != "#/profile" {
		t.Errorf("expected redirect to profile, got %q", lastToken(p))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	p.auth.Register(ctx, &dto.RegisterForm{FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Password: "secret1"})
	p.auth.Register(ctx, &dto.RegisterForm{FirstName: "Bo", LastName: "Lee", Email: "jo@x.com", Password: "secret2"})

	if p.notifier.last() != "Email already registered" {
		t.Errorf("expected duplicate email message, got %q", p.notifier.last())
	}
	if len(p.store.Accounts()) != 2 {
		t.Errorf("duplicate registration must not add an account")
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	p := setupPortal(t)

	p.auth.Register(context.Background(), &dto.RegisterForm{FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Password: "123"})

	if p.notifier.last() != "Password must be at least 6 characters" {
		t.Errorf("expected short password message, got %q", p.notifier.last())
	}
	if len(p.store.Accounts()) != 1 {
		t.Errorf("invalid registration must not add an account")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	p := setupPortal(t)

	p.auth.Register(context.Background(), &dto.RegisterForm{FirstName: "", LastName: "Lee", Email: "jo@x.com", Password: "secret1"})

	if p.notifier.last() != "Please fill in all fields" {
		t.Errorf("expected missing fields message, got %q", p.notifier.last())
	}
}

func TestVerify_NothingPending(t *testing.T) {
	p := setupPortal(t)

	p.auth.Verify(context.Background())

	if p.notifier.last() != "No email to verify" {
		t.Errorf("expected no-email message, got %q", p.notifier.last())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	p := setupPortal(t)

	p.auth.Login(context.Background(), &dto.LoginForm{Email: "admin@example.com", Password: "wrong"})

	if p.notifier.last() != "Invalid email or password." {
		t.Errorf("expected invalid credentials message, got %q", p.notifier.last())
	}
	if p.session.Current() != nil {
		t.Errorf("failed login must not open a session")
	}
}

func TestLogout(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)

	p.auth.Logout(context.Background())

	if p.session.Current() != nil {
		t.Errorf("logout must close the session")
	}
	if lastToken(p) != "#/" {
		t.Errorf("expected redirect to home, got %q", lastToken(p))
	}
}

func TestAccountSave_Create(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	p.accounts.Save(ctx, nil, &dto.AccountForm{
		FirstName: "Bo", LastName: "Kim", Email: "bo@x.com",
		Password: "secret1", Role: "Admin", Verified: true,
	})

	acc, err := p.store.FindAccountByEmail("bo@x.com")
	if err != nil {
		t.Fatalf("account was not created: %v", err)
	}
	if acc.Role != domain.RoleAdmin || !acc.Verified {
		t.Errorf("explicit role/verified must be honored, got %+v", acc)
	}
	if p.refreshed != 1 {
		t.Errorf("successful save must re-render, refreshed=%d", p.refreshed)
	}
}

func TestAccountSave_CreateDuplicateEmail(t *testing.T) {
	p := setupPortal(t)

	p.accounts.Save(context.Background(), nil, &dto.AccountForm{
		FirstName: "Bo", LastName: "Kim", Email: "admin@example.com",
		Password: "secret1", Role: "User",
	})

	if p.notifier.last() != "Email already registered" {
		t.Errorf("expected duplicate email message, got %q", p.notifier.last())
	}
	if p.refreshed != 0 {
		t.Errorf("failed save must not re-render")
	}
}

func TestAccountSave_CreateShortPassword(t *testing.T) {
	p := setupPortal(t)

	p.accounts.Save(context.Background(), nil, &dto.AccountForm{
		FirstName: "Bo", LastName: "Kim", Email: "bo@x.com",
		Password: "123", Role: "User",
	})

	if p.notifier.last() != "Password must be at least 6 characters" {
		t.Errorf("expected short password message, got %q", p.notifier.last())
	}
}

func TestAccountSave_EditKeepsEmailAndPassword(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	id := int64(1)
	p.accounts.Save(ctx, &id, &dto.AccountForm{
		FirstName: "Renamed", LastName: "Admin", Email: "evil@x.com",
		Password: "", Role: "Admin", Verified: true,
	})

	acc, _ := p.store.FindAccountByID(1)
	if acc.Email != "admin@example.com" {
		t.Errorf("email must be immutable on edit, got %q", acc.Email)
	}
	if acc.Password != "admin123" {
		t.Errorf("blank password must preserve the old one, got %q", acc.Password)
	}
	if acc.FirstName != "Renamed" {
		t.Errorf("edit did not apply, got %+v", acc)
	}
}

func TestAccountSave_EditRejectsShortPassword(t *testing.T) {
	p := setupPortal(t)

	id := int64(1)
	p.accounts.Save(context.Background(), &id, &dto.AccountForm{
		FirstName: "Admin", LastName: "User", Password: "123", Role: "Admin", Verified: true,
	})

	if p.notifier.last() != "Password must be at least 6 characters" {
		t.Errorf("expected short password message, got %q", p.notifier.last())
	}
	if acc, _ := p.store.FindAccountByID(1); acc.Password != "admin123" {
		t.Errorf("rejected edit must not change the password")
	}
}

func TestAccountBeginEdit_PrefillsForm(t *testing.T) {
	p := setupPortal(t)

	form, err := p.accounts.BeginEdit(1)
	if err != nil {
		t.Fatalf("begin edit failed: %v", err)
	}
	if form.Email != "admin@example.com" || form.Role != "Admin" || !form.Verified {
		t.Errorf("unexpected prefilled form: %+v", form)
	}
	if form.Password != "" {
		t.Errorf("password must not be prefilled")
	}
}

func TestAccountResetPassword(t *testing.T) {
	p := setupPortal(t)
	p.prompter.answers = []string{"newsecret"}

	p.accounts.ResetPassword(context.Background(), 1)

	if acc, _ := p.store.FindAccountByID(1); acc.Password != "newsecret" {
		t.Errorf("password was not reset, got %q", acc.Password)
	}
	if p.notifier.last() != "Password reset successfully" {
		t.Errorf("expected success message, got %q", p.notifier.last())
	}
}

func TestAccountResetPassword_ShortInput(t *testing.T) {
	p := setupPortal(t)
	p.prompter.answers = []string{"abc"}

	p.accounts.ResetPassword(context.Background(), 1)

	if p.notifier.last() != "Password must be at least 6 characters" {
		t.Errorf("expected short password message, got %q", p.notifier.last())
	}
	if acc, _ := p.store.FindAccountByID(1); acc.Password != "admin123" {
		t.Errorf("short input must not change the password")
	}
}

func TestAccountResetPassword_Cancelled(t *testing.T) {
	p := setupPortal(t)
	p.prompter.cancel = true

	p.accounts.ResetPassword(context.Background(), 1)

	if len(p.notifier.messages) != 0 {
		t.Errorf("cancel must be silent, got %v", p.notifier.messages)
	}
}

func TestAccountDelete_SelfGuardBeforeConfirm(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)

	p.accounts.Delete(context.Background(), 1)

	if p.confirmer.calls != 0 {
		t.Errorf("self-delete must be rejected before the confirmation prompt")
	}
	if p.notifier.last() != "Cannot delete your own account" {
		t.Errorf("expected guard message, got %q", p.notifier.last())
	}
	if _, err := p.store.FindAccountByID(1); err != nil {
		t.Errorf("account must still exist: %v", err)
	}
}

func TestAccountDelete_Confirmed(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)
	p.registerAndVerify(t, "jo@x.com")
	target, _ := p.store.FindAccountByEmail("jo@x.com")

	p.accounts.Delete(context.Background(), target.ID)

	if p.confirmer.calls != 1 {
		t.Errorf("expected one confirmation prompt, got %d", p.confirmer.calls)
	}
	if _, err := p.store.FindAccountByEmail("jo@x.com"); err == nil {
		t.Errorf("account was not deleted")
	}
}

func TestAccountDelete_Declined(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)
	p.registerAndVerify(t, "jo@x.com")
	target, _ := p.store.FindAccountByEmail("jo@x.com")
	p.confirmer.answer = false

	p.accounts.Delete(context.Background(), target.ID)

	if _, err := p.store.FindAccountByEmail("jo@x.com"); err != nil {
		t.Errorf("declined confirmation must not delete: %v", err)
	}
}

func TestDepartmentQuickAdd(t *testing.T) {
	p := setupPortal(t)
	p.prompter.answers = []string{"Support", "Helpdesk and tickets"}

	p.departments.QuickAdd(context.Background())

	depts := p.departments.List()
	last := depts[len(depts)-1]
	if last.Name != "Support" || last.Description != "Helpdesk and tickets" {
		t.Errorf("unexpected department: %+v", last)
	}
	if p.notifier.last() != "Department added" {
		t.Errorf("expected success message, got %q", p.notifier.last())
	}
}

func TestDepartmentQuickAdd_Cancelled(t *testing.T) {
	p := setupPortal(t)
	p.prompter.cancel = true

	p.departments.QuickAdd(context.Background())

	if len(p.departments.List()) != 2 {
		t.Errorf("cancelled quick-add must not create a department")
	}
	if len(p.notifier.messages) != 0 {
		t.Errorf("cancel must be silent, got %v", p.notifier.messages)
	}
}

func TestDepartmentQuickAdd_BlankName(t *testing.T) {
	p := setupPortal(t)
	p.prompter.answers = []string{"   ", "desc"}

	p.departments.QuickAdd(context.Background())

	if len(p.departments.List()) != 2 {
		t.Errorf("blank name must not create a department")
	}
}

func TestDepartmentDelete(t *testing.T) {
	p := setupPortal(t)

	p.departments.Delete(context.Background(), 2)

	if len(p.departments.List()) != 1 {
		t.Errorf("department was not deleted")
	}
	if p.notifier.last() != "Department deleted" {
		t.Errorf("expected success message, got %q", p.notifier.last())
	}
}

func TestEmployeeSave_CopiesUserID(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.registerAndVerify(t, "jo@x.com")
	acc, _ := p.store.FindAccountByEmail("jo@x.com")

	p.employees.Save(ctx, nil, &dto.EmployeeForm{
		EmployeeID: "E1", Email: "jo@x.com", Position: "Dev", DeptID: 1, HireDate: "2026-02-01",
	})

	views := p.employees.List()
	if len(views) != 1 {
		t.Fatalf("employee was not created")
	}
	if views[0].UserID != acc.ID {
		t.Errorf("expected userId %d copied from account, got %d", acc.ID, views[0].UserID)
	}
	if views[0].DepartmentName != "Engineering" {
		t.Errorf("expected department name resolved, got %q", views[0].DepartmentName)
	}
}

func TestEmployeeSave_NoMatchingAccount(t *testing.T) {
	p := setupPortal(t)

	p.employees.Save(context.Background(), nil, &dto.EmployeeForm{
		EmployeeID: "E1", Email: "ghost@x.com", Position: "Dev", DeptID: 1,
	})

	if p.notifier.last() != "No account with that email exists" {
		t.Errorf("expected referential error message, got %q", p.notifier.last())
	}
	if len(p.employees.List()) != 0 {
		t.Errorf("employee must not be created")
	}
}

func TestEmployeeList_DanglingDepartment(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.registerAndVerify(t, "jo@x.com")

	p.employees.Save(ctx, nil, &dto.EmployeeForm{
		EmployeeID: "E1", Email: "jo@x.com", Position: "Dev", DeptID: 1,
	})
	p.departments.Delete(ctx, 1)

	views := p.employees.List()
	if len(views) != 1 {
		t.Fatalf("employee must survive department deletion")
	}
	if views[0].DepartmentName != "N/A" {
		t.Errorf("dangling department must render as N/A, got %q", views[0].DepartmentName)
	}
}

func TestEmployeeSave_EditByStableID(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.registerAndVerify(t, "jo@x.com")

	p.employees.Save(ctx, nil, &dto.EmployeeForm{EmployeeID: "E1", Email: "jo@x.com", Position: "Dev", DeptID: 1})
	p.employees.Save(ctx, nil, &dto.EmployeeForm{EmployeeID: "E2", Email: "jo@x.com", Position: "QA", DeptID: 2})

	views := p.employees.List()
	first := views[0].ID

	// Удаление первого не сдвигает адресацию второго
	p.employees.Delete(ctx, first)

	second := p.employees.List()[0]
	id := second.ID
	p.employees.Save(ctx, &id, &dto.EmployeeForm{EmployeeID: "E2", Email: "jo@x.com", Position: "Lead QA", DeptID: 2})

	if got := p.employees.List()[0]; got.Position != "Lead QA" || got.EmployeeID != "E2" {
		t.Errorf("edit by id addressed the wrong record: %+v", got)
	}
}

func TestRequestSubmitAndApprove(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.registerAndVerify(t, "jo@x.com")
	p.auth.Login(ctx, &dto.LoginForm{Email: "jo@x.com", Password: "secret1"})

	p.requests.Submit(ctx, &dto.RequestForm{
		Type:  "Equipment",
		Items: []dto.RequestItemForm{{Name: "Laptop", Qty: 1}},
	})

	reqs := p.store.Requests()
	if len(reqs) != 1 {
		t.Fatalf("request was not created")
	}
	if reqs[0].Status != domain.StatusPending || reqs[0].EmployeeEmail != "jo@x.com" {
		t.Errorf("unexpected request: %+v", reqs[0])
	}
	if reqs[0].Date == "" {
		t.Errorf("request date must be stamped")
	}

	p.loginAdmin(t)
	p.requests.Approve(ctx, reqs[0].ID)

	if got, _ := p.store.FindRequestByID(reqs[0].ID); got.Status != domain.StatusApproved {
		t.Errorf("expected Approved, got %s", got.Status)
	}
}

func TestRequestSubmit_EmptyItems(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)

	p.requests.Submit(context.Background(), &dto.RequestForm{Type: "Equipment"})

	if p.notifier.last() != "Please add at least one item" {
		t.Errorf("expected empty items message, got %q", p.notifier.last())
	}
	if len(p.store.Requests()) != 0 {
		t.Errorf("invalid request must not be stored")
	}
}

func TestRequestSubmit_FiltersBlankRows(t *testing.T) {
	p := setupPortal(t)
	p.loginAdmin(t)

	p.requests.Submit(context.Background(), &dto.RequestForm{
		Type: "Equipment",
		Items: []dto.RequestItemForm{
			{Name: "Monitor", Qty: 2},
			{Name: "   ", Qty: 1},
			{Name: "Cable", Qty: 1},
		},
	})

	reqs := p.store.Requests()
	if len(reqs) != 1 || len(reqs[0].Items) != 2 {
		t.Fatalf("unexpected request items: %+v", reqs)
	}
}

func TestRequestVisibility(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	p.registerAndVerify(t, "a@x.com")
	p.registerAndVerify(t, "b@x.com")

	p.auth.Login(ctx, &dto.LoginForm{Email: "a@x.com", Password: "secret1"})
	p.requests.Submit(ctx, &dto.RequestForm{Type: "Equipment", Items: []dto.RequestItemForm{{Name: "Laptop", Qty: 1}}})

	p.auth.Login(ctx, &dto.LoginForm{Email: "b@x.com", Password: "secret1"})
	p.requests.Submit(ctx, &dto.RequestForm{Type: "Leave", Items: []dto.RequestItemForm{{Name: "Vacation", Qty: 5}}})

	// b видит только собственную заявку
	visible := p.requests.List()
	if len(visible) != 1 || visible[0].EmployeeEmail != "b@x.com" {
		t.Errorf("user must see only own requests, got %+v", visible)
	}

	// Администратор видит обе
	p.loginAdmin(t)
	if all := p.requests.List(); len(all) != 2 {
		t.Errorf("admin must see all requests, got %d", len(all))
	}
}

func TestRequestTransition_RequiresAdmin(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.registerAndVerify(t, "jo@x.com")
	p.auth.Login(ctx, &dto.LoginForm{Email: "jo@x.com", Password: "secret1"})
	p.requests.Submit(ctx, &dto.RequestForm{Type: "Equipment", Items: []dto.RequestItemForm{{Name: "Laptop", Qty: 1}}})
	id := p.store.Requests()[0].ID

	p.requests.Approve(ctx, id)

	if p.notifier.last() != "Access denied. Admins only." {
		t.Errorf("expected access denied, got %q", p.notifier.last())
	}
	if got, _ := p.store.FindRequestByID(id); got.Status != domain.StatusPending {
		t.Errorf("non-admin transition must not change status")
	}
}

func TestRequestTransition_AppliedRegardlessOfStatus(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()
	p.loginAdmin(t)
	p.requests.Submit(ctx, &dto.RequestForm{Type: "Equipment", Items: []dto.RequestItemForm{{Name: "Laptop", Qty: 1}}})
	id := p.store.Requests()[0].ID

	p.requests.Approve(ctx, id)
	p.requests.Reject(ctx, id)

	if got, _ := p.store.FindRequestByID(id); got.Status != domain.StatusRejected {
		t.Errorf("transition applies to any found request, got %s", got.Status)
	}
}

func TestFullWorkflow(t *testing.T) {
	p := setupPortal(t)
	ctx := context.Background()

	p.auth.Register(ctx, &dto.RegisterForm{FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Password: "secret1"})
	p.auth.Verify(ctx)
	p.auth.Login(ctx, &dto.LoginForm{Email: "jo@x.com", Password: "secret1"})

	p.requests.Submit(ctx, &dto.RequestForm{Type: "Equipment", Items: []dto.RequestItemForm{{Name: "Laptop", Qty: 1}}})

	p.loginAdmin(t)

	p.prompter.answers = []string{"Support", "Helpdesk"}
	p.departments.QuickAdd(ctx)

	depts := p.departments.List()
	support := depts[len(depts)-1]

	p.employees.Save(ctx, nil, &dto.EmployeeForm{
		EmployeeID: "E1", Email: "jo@x.com", Position: "Dev", DeptID: support.ID, HireDate: "2026-03-01",
	})
	p.requests.Approve(ctx, p.store.Requests()[0].ID)

	if len(p.store.Accounts()) != 2 || len(p.store.Departments()) != 3 || len(p.store.Employees()) != 1 {
		t.Fatalf("unexpected final state")
	}
	if p.store.Requests()[0].Status != domain.StatusApproved {
		t.Fatalf("request was not approved")
	}

	t.Log("Full workflow completed successfully")
}

func BenchmarkSubmitRequest(b *testing.B) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	kv := storage.NewMemory()
	st := store.New(kv, logger)
	if err := st.Load(context.Background()); err != nil {
		b.Fatalf("load failed: %v", err)
	}
	sess := session.NewManager(st, kv)
	if _, err := sess.Authenticate(context.Background(), "admin@example.com", "admin123"); err != nil {
		b.Fatalf("login failed: %v", err)
	}
	requests := handler.NewRequestHandler(service.NewRequestService(st), sess, &recordingNotifier{}, func() {}, logger)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		requests.Submit(context.Background(), &dto.RequestForm{
			Type:  "Equipment",
			Items: []dto.RequestItemForm{{Name: "Item" + strconv.Itoa(i), Qty: 1}},
		})
	}
}
