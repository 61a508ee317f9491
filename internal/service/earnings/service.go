package earnings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/worklane/incentive-backend-go/internal/domain/adjustment"
	"github.com/worklane/incentive-backend-go/internal/domain/checklist"
	"github.com/worklane/incentive-backend-go/internal/domain/earnings"
	"github.com/worklane/incentive-backend-go/internal/domain/employee"
	"github.com/worklane/incentive-backend-go/internal/domain/project"
	"github.com/worklane/incentive-backend-go/internal/domain/task"
)

const unknownProjectName = "Unknown Project"

type EarningsServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	taskRepo       task.TaskRepository
	checklistRepo  checklist.ChecklistRepository
	projectRepo    project.ProjectRepository
	adjustmentRepo adjustment.AdjustmentRepository

	// clock supplies "now" and the local day boundary; injected so tests run
	// against a fixed time.
	clock func() time.Time
}

func NewEarningsService(
	employeeRepo employee.EmployeeRepository,
	taskRepo task.TaskRepository,
	checklistRepo checklist.ChecklistRepository,
	projectRepo project.ProjectRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) earnings.EarningsService {
	return &EarningsServiceImpl{
		employeeRepo:   employeeRepo,
		taskRepo:       taskRepo,
		checklistRepo:  checklistRepo,
		projectRepo:    projectRepo,
		adjustmentRepo: adjustmentRepo,
		clock:          time.Now,
	}
}

// GenerateReport evaluates every record source for the employee against the
// requested window and reconciles the results. The computation is pure
// read-and-reduce: it mutates nothing and either returns the full report or a
// single error.
func (s *EarningsServiceImpl) GenerateReport(ctx context.Context, req earnings.ReportRequest) (earnings.Report, error) {
	if err := req.Validate(); err != nil {
		return earnings.Report{}, err
	}

	emp, err := s.employeeRepo.GetByName(ctx, strings.TrimSpace(req.EmployeeName))
	if err != nil {
		return earnings.Report{}, err
	}

	now := s.clock()
	w := s.resolveWindow(req, now)

	rep := earnings.Report{
		EmployeeName: emp.FullName,
		Tasks:        make([]earnings.TaskLine, 0),
		Checklists:   make([]earnings.ChecklistLine, 0),
		Projects:     make([]earnings.ProjectLine, 0),
		CustomBonus:  make([]earnings.CustomLine, 0),
		CustomFine:   make([]earnings.CustomLine, 0),
	}

	projectNames := map[string]string{}

	if err := s.collectTasks(ctx, emp.ID, w, now, projectNames, &rep); err != nil {
		return earnings.Report{}, fmt.Errorf("failed to evaluate tasks: %w", err)
	}
	if err := s.collectCompletions(ctx, emp.ID, w, now, projectNames, &rep); err != nil {
		return earnings.Report{}, fmt.Errorf("failed to evaluate archived completions: %w", err)
	}
	if err := s.collectChecklists(ctx, emp.ID, w, &rep); err != nil {
		return earnings.Report{}, fmt.Errorf("failed to evaluate checklists: %w", err)
	}
	if err := s.collectProjects(ctx, emp.ID, w, &rep); err != nil {
		return earnings.Report{}, fmt.Errorf("failed to evaluate projects: %w", err)
	}
	if err := s.collectAdjustments(ctx, emp.ID, w, &rep); err != nil {
		return earnings.Report{}, fmt.Errorf("failed to evaluate manual adjustments: %w", err)
	}

	rep.Summary = summarize(rep)
	return rep, nil
}

// resolveWindow parses the optional date bounds, defaulting both to today.
// Bounds snap to local day boundaries: 00:00:00.000 and 23:59:59.999.
func (s *EarningsServiceImpl) resolveWindow(req earnings.ReportRequest, now time.Time) window {
	start := startOfDay(now)
	end := endOfDay(now)
	if req.StartDate != "" {
		if d, err := time.ParseInLocation("2006-01-02", req.StartDate, now.Location()); err == nil {
			start = startOfDay(d)
		}
	}
	if req.EndDate != "" {
		if d, err := time.ParseInLocation("2006-01-02", req.EndDate, now.Location()); err == nil {
			end = endOfDay(d)
		}
	}
	return window{start: start, end: end}
}

// collectTasks evaluates every live task assigned to the employee.
func (s *EarningsServiceImpl) collectTasks(ctx context.Context, employeeID string, w window, now time.Time, names map[string]string, rep *earnings.Report) error {
	tasks, err := s.taskRepo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		o := classify(taskRule(t), now)
		if !w.matches(o) {
			continue
		}
		name, err := s.projectName(ctx, names, t.ProjectID)
		if err != nil {
			return err
		}
		rep.Tasks = append(rep.Tasks, earnings.TaskLine{
			Date:            o.EventAt.Format(time.RFC3339),
			TaskTitle:       t.Title,
			ProjectName:     name,
			BonusPoints:     o.BonusPoints.InexactFloat64(),
			BonusCurrency:   o.BonusCurrency.InexactFloat64(),
			PenaltyPoints:   o.PenaltyPoints.InexactFloat64(),
			PenaltyCurrency: o.PenaltyCurrency.InexactFloat64(),
		})
	}
	return nil
}

// collectCompletions evaluates archived completion snapshots. Pending
// archives are never evaluated. Unlike live tasks, archives match the window
// on one uniform qualifying event: they are immutable history, not
// deadline-bearing work.
func (s *EarningsServiceImpl) collectCompletions(ctx context.Context, employeeID string, w window, now time.Time, names map[string]string, rep *earnings.Report) error {
	comps, err := s.taskRepo.ListCompletionsByApproval(ctx, []task.ApprovalStatus{
		task.ApprovalApproved,
		task.ApprovalRejected,
		task.ApprovalDeadlinePassed,
	})
	if err != nil {
		return err
	}

	for _, c := range comps {
		if !c.BelongsTo(employeeID) {
			continue
		}
		o := classify(completionRule(c), now)
		if o.Kind == outcomeNone {
			continue
		}
		event := c.CreatedAt
		if at := coalesceTime(c.ApprovedAt, c.TickedAt, c.CompletedAt); at != nil {
			event = *at
		}
		if !w.contains(event) {
			continue
		}
		name, err := s.projectName(ctx, names, c.ProjectID)
		if err != nil {
			return err
		}
		rep.Tasks = append(rep.Tasks, earnings.TaskLine{
			Date:            event.Format(time.RFC3339),
			TaskTitle:       c.Title,
			ProjectName:     name,
			BonusPoints:     o.BonusPoints.InexactFloat64(),
			BonusCurrency:   o.BonusCurrency.InexactFloat64(),
			PenaltyPoints:   o.PenaltyPoints.InexactFloat64(),
			PenaltyCurrency: o.PenaltyCurrency.InexactFloat64(),
		})
	}
	return nil
}

// collectChecklists evaluates the employee's admin-approved daily updates
// against the active checklist configuration. Checked items earn the
// configured bonus, unchecked items the configured fine; items with no config
// match or all-zero magnitudes are skipped.
func (s *EarningsServiceImpl) collectChecklists(ctx context.Context, employeeID string, w window, rep *earnings.Report) error {
	items, err := s.checklistRepo.GetActiveConfig(ctx)
	if err != nil {
		return err
	}
	cfg := make(map[string]checklist.ConfigItem, len(items))
	for _, it := range items {
		cfg[checklist.NormalizeLabel(it.Label)] = it
	}

	updates, err := s.checklistRepo.ListApprovedUpdatesInRange(ctx, employeeID, w.start, w.end)
	if err != nil {
		return err
	}

	for _, u := range updates {
		for _, item := range u.Items {
			c, ok := cfg[checklist.NormalizeLabel(item.Label)]
			if !ok {
				continue
			}
			line := earnings.ChecklistLine{
				Date:        u.Date.Format("2006-01-02"),
				Description: "Checklist: " + item.Label,
			}
			if item.Checked {
				if !c.Bonus.IsPositive() && !c.BonusCurrency.IsPositive() {
					continue
				}
				line.BonusPoints = c.Bonus.InexactFloat64()
				line.BonusCurrency = c.BonusCurrency.InexactFloat64()
			} else {
				fineCurrency := fallbackCurrency(c.FineCurrency, c.Fine)
				if !c.Fine.IsPositive() && !fineCurrency.IsPositive() {
					continue
				}
				line.PenaltyPoints = c.Fine.InexactFloat64()
				line.PenaltyCurrency = fineCurrency.InexactFloat64()
			}
			rep.Checklists = append(rep.Checklists, line)
		}
	}
	return nil
}

// collectProjects awards project-level magnitudes once per lead assignment
// falling inside the window.
func (s *EarningsServiceImpl) collectProjects(ctx context.Context, employeeID string, w window, rep *earnings.Report) error {
	projects, err := s.projectRepo.ListByLeadAssigneeInRange(ctx, employeeID, w.start, w.end)
	if err != nil {
		return err
	}

	for _, p := range projects {
		if p.BonusPoints.IsZero() && p.BonusCurrency.IsZero() &&
			p.PenaltyPoints.IsZero() && p.PenaltyCurrency.IsZero() {
			continue
		}
		desc := "Project assignment"
		if p.Description != nil && *p.Description != "" {
			desc = *p.Description
		}
		var date string
		if p.AssignedAt != nil {
			date = p.AssignedAt.Format(time.RFC3339)
		}
		rep.Projects = append(rep.Projects, earnings.ProjectLine{
			Date:            date,
			Description:     desc,
			ProjectName:     p.Name,
			BonusPoints:     p.BonusPoints.InexactFloat64(),
			BonusCurrency:   p.BonusCurrency.InexactFloat64(),
			PenaltyPoints:   p.PenaltyPoints.InexactFloat64(),
			PenaltyCurrency: fallbackCurrency(p.PenaltyCurrency, p.PenaltyPoints).InexactFloat64(),
		})
	}
	return nil
}

// collectAdjustments emits every manual bonus/fine entry whose record date
// key falls inside the window. Matching is string comparison on the
// YYYY-MM-DD key, deliberately narrower than the timestamp windows of the
// other sources.
func (s *EarningsServiceImpl) collectAdjustments(ctx context.Context, employeeID string, w window, rep *earnings.Report) error {
	records, err := s.adjustmentRepo.ListByDateKeyRange(ctx, employeeID,
		adjustment.ToDateKey(w.start), adjustment.ToDateKey(w.end))
	if err != nil {
		return err
	}

	for _, r := range records {
		for _, e := range r.BonusEntries {
			rep.CustomBonus = append(rep.CustomBonus, customLine(r.DateKey, e, "Bonus"))
		}
		for _, e := range r.FineEntries {
			rep.CustomFine = append(rep.CustomFine, customLine(r.DateKey, e, "Fine"))
		}
	}
	return nil
}

func customLine(dateKey string, e adjustment.Entry, fallbackDesc string) earnings.CustomLine {
	desc := e.Description
	if desc == "" {
		desc = fallbackDesc
	}
	return earnings.CustomLine{
		Date:        dateKey,
		Description: desc,
		Type:        string(e.Kind),
		Value:       e.Value.InexactFloat64(),
	}
}

// projectName resolves a project reference through a per-request cache,
// substituting a placeholder for references that no longer resolve.
func (s *EarningsServiceImpl) projectName(ctx context.Context, cache map[string]string, projectID *string) (string, error) {
	if projectID == nil || *projectID == "" {
		return unknownProjectName, nil
	}
	if name, ok := cache[*projectID]; ok {
		return name, nil
	}
	name, err := s.projectRepo.GetNameByID(ctx, *projectID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			cache[*projectID] = unknownProjectName
			return unknownProjectName, nil
		}
		return "", err
	}
	cache[*projectID] = name
	return name, nil
}

// summarize folds every emitted line item into the four running totals.
func summarize(rep earnings.Report) earnings.Summary {
	var sum earnings.Summary
	for _, t := range rep.Tasks {
		sum.TotalPointsEarned += t.BonusPoints
		sum.TotalCurrencyEarned += t.BonusCurrency
		sum.TotalPointsPenalty += t.PenaltyPoints
		sum.TotalCurrencyPenalty += t.PenaltyCurrency
	}
	for _, c := range rep.Checklists {
		sum.TotalPointsEarned += c.BonusPoints
		sum.TotalCurrencyEarned += c.BonusCurrency
		sum.TotalPointsPenalty += c.PenaltyPoints
		sum.TotalCurrencyPenalty += c.PenaltyCurrency
	}
	for _, p := range rep.Projects {
		sum.TotalPointsEarned += p.BonusPoints
		sum.TotalCurrencyEarned += p.BonusCurrency
		sum.TotalPointsPenalty += p.PenaltyPoints
		sum.TotalCurrencyPenalty += p.PenaltyCurrency
	}
	for _, b := range rep.CustomBonus {
		if b.Type == string(adjustment.KindCurrency) {
			sum.TotalCurrencyEarned += b.Value
		} else {
			sum.TotalPointsEarned += b.Value
		}
	}
	for _, f := range rep.CustomFine {
		if f.Type == string(adjustment.KindCurrency) {
			sum.TotalCurrencyPenalty += f.Value
		} else {
			sum.TotalPointsPenalty += f.Value
		}
	}
	return sum
}

// GetChecklistConfig exposes the active checklist configuration to the
// reporting client.
func (s *EarningsServiceImpl) GetChecklistConfig(ctx context.Context) ([]earnings.ConfigItemResponse, error) {
	items, err := s.checklistRepo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist configuration: %w", err)
	}
	resp := make([]earnings.ConfigItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, earnings.ConfigItemResponse{
			ID:            it.ID,
			Label:         it.Label,
			Bonus:         it.Bonus.InexactFloat64(),
			BonusCurrency: it.BonusCurrency.InexactFloat64(),
			Fine:          it.Fine.InexactFloat64(),
			FineCurrency:  it.FineCurrency.InexactFloat64(),
		})
	}
	return resp, nil
}
