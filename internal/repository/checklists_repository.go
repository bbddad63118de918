package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/pkg/entity"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type sectionRow struct {
	ID          uuid.UUID `db:"id"`
	ChecklistID uuid.UUID `db:"checklist_id"`
	Title       string    `db:"title"`
	Position    int       `db:"position"`
}

type itemRow struct {
	ID          uuid.UUID `db:"id"`
	SectionID   uuid.UUID `db:"section_id"`
	Label       string    `db:"label"`
	Description *string   `db:"description"`
	Checked     bool      `db:"checked"`
	Custom      bool      `db:"custom"`
	Position    int       `db:"position"`
}

type ChecklistsRepository struct {
	conn PgConnection
}

func NewChecklistsRepo(conn PgConnection) *ChecklistsRepository {
	return &ChecklistsRepository{
		conn: conn,
	}
}

// Create must be called inside RunInTx: the checklist, its sections and items are separate statements.
func (cr *ChecklistsRepository) Create(ctx context.Context, cl *entity.Checklist) error {
	if cl == nil {
		return errors.New("checklist is nil")
	}
	q := querier(ctx, cr.conn)
	_, err := q.Exec(ctx, `INSERT INTO checklists (id, user_id, type, progress, last_updated) VALUES ($1, $2, $3, $4, $5);`,
		cl.ID,
		cl.UserID,
		string(cl.Type),
		cl.Progress,
		cl.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (user_id, type)
			case "23505":
				return errorvalues.ErrChecklistExists
			}
		}
		return errors.New("creating checklist error: " + err.Error())
	}
	if len(cl.Sections) == 0 {
		return nil
	}

	sections := psql.Insert("checklist_sections").Columns("id", "checklist_id", "title", "position")
	items := psql.Insert("checklist_items").Columns("id", "section_id", "label", "description", "checked", "custom", "position")
	itemCount := 0
	for _, s := range cl.Sections {
		sections = sections.Values(s.ID, cl.ID, s.Title, s.Order)
		for _, it := range s.Items {
			items = items.Values(it.ID, s.ID, it.Label, it.Description, it.Checked, it.Custom, it.Position)
			itemCount++
		}
	}
	sql, args, err := sections.ToSql()
	if err != nil {
		return errors.New("building sections insert error: " + err.Error())
	}
	if _, err = q.Exec(ctx, sql, args...); err != nil {
		return errors.New("creating checklist sections error: " + err.Error())
	}
	if itemCount == 0 {
		return nil
	}
	sql, args, err = items.ToSql()
	if err != nil {
		return errors.New("building items insert error: " + err.Error())
	}
	if _, err = q.Exec(ctx, sql, args...); err != nil {
		return errors.New("creating checklist items error: " + err.Error())
	}
	return nil
}

func (cr *ChecklistsRepository) GetByUserAndType(ctx context.Context, uid uuid.UUID, checklistType entity.ChecklistType) (*entity.Checklist, error) {
	row := querier(ctx, cr.conn).QueryRow(ctx, `SELECT id, user_id, type, progress, last_updated FROM checklists WHERE user_id = $1 AND type = $2;`,
		uid, string(checklistType))
	cl, err := scanChecklist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChecklistNotFound
		}
		return nil, errors.New("getting checklist by type error: " + err.Error())
	}
	if err = cr.loadTree(ctx, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// GetByID does not tell a missing checklist from a foreign one.
func (cr *ChecklistsRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Checklist, error) {
	row := querier(ctx, cr.conn).QueryRow(ctx, `SELECT id, user_id, type, progress, last_updated FROM checklists WHERE id = $1 AND user_id = $2;`,
		id, uid)
	cl, err := scanChecklist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotFoundOrUnauthorized
		}
		return nil, errors.New("getting checklist by id error: " + err.Error())
	}
	if err = cr.loadTree(ctx, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (cr *ChecklistsRepository) LockForUpdate(ctx context.Context, id, uid uuid.UUID) error {
	var locked uuid.UUID
	err := querier(ctx, cr.conn).QueryRow(ctx, `SELECT id FROM checklists WHERE id = $1 AND user_id = $2 FOR UPDATE;`, id, uid).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrNotFoundOrUnauthorized
		}
		return errors.New("locking checklist error: " + err.Error())
	}
	return nil
}

func (cr *ChecklistsRepository) LockItemChecklist(ctx context.Context, itemID, uid uuid.UUID) (uuid.UUID, error) {
	var checklistID uuid.UUID
	err := querier(ctx, cr.conn).QueryRow(ctx,
		`SELECT c.id FROM checklist_items i JOIN checklist_sections s ON s.id = i.section_id JOIN checklists c ON c.id = s.checklist_id WHERE i.id = $1 AND c.user_id = $2 FOR UPDATE OF c;`,
		itemID, uid).Scan(&checklistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, errorvalues.ErrNotFoundOrUnauthorized
		}
		return uuid.Nil, errors.New("locking item checklist error: " + err.Error())
	}
	return checklistID, nil
}

func (cr *ChecklistsRepository) SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE checklist_items SET checked = $1 WHERE id = $2;`, checked, itemID)
	if err != nil {
		return errors.New("updating checklist item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotFoundOrUnauthorized
	}
	return nil
}

func (cr *ChecklistsRepository) UncheckAll(ctx context.Context, checklistID uuid.UUID) error {
	_, err := querier(ctx, cr.conn).Exec(ctx,
		`UPDATE checklist_items SET checked = FALSE WHERE checked AND section_id IN (SELECT id FROM checklist_sections WHERE checklist_id = $1);`,
		checklistID)
	if err != nil {
		return errors.New("unchecking checklist items error: " + err.Error())
	}
	return nil
}

func (cr *ChecklistsRepository) UpdateProgress(ctx context.Context, checklistID uuid.UUID, progress int, lastUpdated time.Time) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE checklists SET progress = $1, last_updated = $2 WHERE id = $3;`,
		progress, lastUpdated, checklistID)
	if err != nil {
		return errors.New("updating checklist progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChecklistNotFound
	}
	return nil
}

// CompareAndSetProgress stores progress only while the row still holds prevProgress and
// prevUpdated. Reports false when a concurrent write got there first.
func (cr *ChecklistsRepository) CompareAndSetProgress(ctx context.Context, checklistID uuid.UUID, prevProgress int, prevUpdated time.Time, progress int, lastUpdated time.Time) (bool, error) {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE checklists SET progress = $1, last_updated = $2 WHERE id = $3 AND progress = $4 AND last_updated = $5;`,
		progress, lastUpdated, checklistID, prevProgress, prevUpdated)
	if err != nil {
		return false, errors.New("correcting checklist progress error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func scanChecklist(row pgx.Row) (*entity.Checklist, error) {
	var (
		cl  entity.Checklist
		typ string
	)
	if err := row.Scan(&cl.ID, &cl.UserID, &typ, &cl.Progress, &cl.LastUpdated); err != nil {
		return nil, err
	}
	cl.Type = entity.ChecklistType(typ)
	return &cl, nil
}

// loadTree reads sections and items of cl, both already ordered by position.
func (cr *ChecklistsRepository) loadTree(ctx context.Context, cl *entity.Checklist) error {
	q := querier(ctx, cr.conn)
	var sections []sectionRow
	err := pgxscan.Select(ctx, q, &sections,
		`SELECT id, checklist_id, title, position FROM checklist_sections WHERE checklist_id = $1 ORDER BY position;`, cl.ID)
	if err != nil {
		return errors.New("loading checklist sections error: " + err.Error())
	}
	var items []itemRow
	err = pgxscan.Select(ctx, q, &items,
		`SELECT i.id, i.section_id, i.label, i.description, i.checked, i.custom, i.position FROM checklist_items i JOIN checklist_sections s ON s.id = i.section_id WHERE s.checklist_id = $1 ORDER BY s.position, i.position;`,
		cl.ID)
	if err != nil {
		return errors.New("loading checklist items error: " + err.Error())
	}

	cl.Sections = make([]entity.ChecklistSection, 0, len(sections))
	index := make(map[uuid.UUID]int, len(sections))
	for i, s := range sections {
		index[s.ID] = i
		cl.Sections = append(cl.Sections, entity.ChecklistSection{
			ID:          s.ID,
			ChecklistID: s.ChecklistID,
			Title:       s.Title,
			Order:       s.Position,
			Items:       []entity.ChecklistItem{},
		})
	}
	for _, it := range items {
		i, ok := index[it.SectionID]
		if !ok {
			continue
		}
		cl.Sections[i].Items = append(cl.Sections[i].Items, entity.ChecklistItem{
			ID:          it.ID,
			SectionID:   it.SectionID,
			Label:       it.Label,
			Description: it.Description,
			Checked:     it.Checked,
			Custom:      it.Custom,
			Position:    it.Position,
		})
	}
	return nil
}
