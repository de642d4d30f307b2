package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Record tags of the data file.
const (
	TagUser    = "USER"
	TagNextID  = "NEXT_ID"
	TagBudgets = "BUDGETS"
	TagTrans   = "TRANS"
	TagEndUser = "ENDUSER"

	fieldSeparator  = "|"
	budgetSeparator = ","
	budgetKeyValue  = ":"

	transFieldCount = 7
	maxLineSize     = 1024 * 1024
)

// DecodeStats summarizes what Decode kept and what it had to drop or fix.
type DecodeStats struct {
	Users            int
	Transactions     int
	DroppedRecords   int
	IgnoredLines     int
	DuplicateUsers   int
	RepairedCounters int
}

// Codec reads and writes the line-oriented, pipe-delimited profile format:
//
//	USER|<username>|<password>
//	NEXT_ID|<integer>
//	BUDGETS|<cat1>:<amount1>,<cat2>:<amount2>,
//	TRANS|<id>|<date>|<category>|<description>|<amount>|<I or E>
//	ENDUSER
type Codec struct {
	logger logging.Logger
}

// NewCodec creates a codec that reports dropped records to logger.
func NewCodec(logger logging.Logger) *Codec {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Codec{logger: logger}
}

// Encode writes every profile in order. Budgets are written sorted by category.
func (c *Codec) Encode(w io.Writer, profiles []*models.UserProfile) error {
	bw := bufio.NewWriter(w)

	for _, p := range profiles {
		fmt.Fprintf(bw, "%s|%s|%s\n", TagUser, p.Username, p.Password)
		fmt.Fprintf(bw, "%s|%d\n", TagNextID, p.NextTransactionID)

		bw.WriteString(TagBudgets + fieldSeparator)
		for _, category := range p.BudgetCategories() {
			fmt.Fprintf(bw, "%s%s%s%s", category, budgetKeyValue, p.Budgets[category].String(), budgetSeparator)
		}
		bw.WriteString("\n")

		for _, tx := range p.Transactions {
			fmt.Fprintf(bw, "%s|%d|%s|%s|%s|%s|%s\n",
				TagTrans, tx.ID, tx.Date, tx.Category, tx.Description, tx.Amount.String(), tx.Type.Code())
		}
		bw.WriteString(TagEndUser + "\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

// Decode reads profiles from r. Malformed records are dropped and counted rather than
// failing the load; only read errors are returned. After reading, each profile whose
// NEXT_ID is not above its highest transaction id gets the counter moved past it.
func (c *Codec) Decode(r io.Reader) ([]*models.UserProfile, DecodeStats, error) {
	var (
		stats    DecodeStats
		profiles []*models.UserProfile
		current  *models.UserProfile
		lineNo   int
	)
	seen := make(map[string]bool)
	txIDs := make(map[*models.UserProfile]map[int]bool)

	drop := func(reason string) {
		stats.DroppedRecords++
		c.logger.WithFields(
			logging.Field{Key: logging.FieldLine, Value: lineNo},
			logging.Field{Key: logging.FieldReason, Value: reason},
		).Warn("Dropping malformed record")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		tag, rest, _ := strings.Cut(line, fieldSeparator)

		switch {
		case tag == TagUser && strings.HasPrefix(line, TagUser+fieldSeparator):
			username, password, _ := strings.Cut(rest, fieldSeparator)
			password, _, _ = strings.Cut(password, fieldSeparator)
			if seen[username] {
				stats.DuplicateUsers++
				current = nil
				c.logger.WithFields(
					logging.Field{Key: logging.FieldLine, Value: lineNo},
					logging.Field{Key: logging.FieldUsername, Value: username},
				).Warn("Dropping duplicate user record")
				continue
			}
			seen[username] = true
			current = models.NewUserProfile(username, password)
			txIDs[current] = make(map[int]bool)
			profiles = append(profiles, current)

		case line == TagEndUser:
			current = nil

		case !isRecordTag(tag):
			if strings.TrimSpace(line) != "" {
				stats.IgnoredLines++
			}

		case current == nil:
			stats.IgnoredLines++

		case tag == TagNextID:
			next, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				drop("invalid NEXT_ID")
				continue
			}
			current.NextTransactionID = next

		case tag == TagBudgets:
			for _, reason := range decodeBudgets(current, rest) {
				drop(reason)
			}

		case tag == TagTrans:
			tx, err := decodeTransaction(line)
			if err != nil {
				drop(err.Error())
				continue
			}
			if txIDs[current][tx.ID] {
				drop(fmt.Sprintf("duplicate transaction id %d", tx.ID))
				continue
			}
			txIDs[current][tx.ID] = true
			current.Transactions = append(current.Transactions, tx)
			stats.Transactions++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read profiles: %w", err)
	}

	for _, p := range profiles {
		if repairNextID(p) {
			stats.RepairedCounters++
			c.logger.WithFields(
				logging.Field{Key: logging.FieldUsername, Value: p.Username},
				logging.Field{Key: logging.FieldCount, Value: p.NextTransactionID},
			).Warn("Repaired transaction id counter")
		}
	}
	stats.Users = len(profiles)

	if profiles == nil {
		profiles = []*models.UserProfile{}
	}
	return profiles, stats, nil
}

func isRecordTag(tag string) bool {
	switch tag {
	case TagNextID, TagBudgets, TagTrans:
		return true
	default:
		return false
	}
}

// decodeBudgets adds every well-formed "category:amount" entry and returns a reason for
// each entry it had to drop.
func decodeBudgets(p *models.UserProfile, list string) []string {
	var dropped []string
	for _, entry := range strings.Split(list, budgetSeparator) {
		if entry == "" {
			continue
		}
		category, amountText, found := strings.Cut(entry, budgetKeyValue)
		if !found || category == "" {
			dropped = append(dropped, fmt.Sprintf("invalid budget entry %q", entry))
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
		if err != nil || amount.IsNegative() {
			dropped = append(dropped, fmt.Sprintf("invalid budget amount %q", entry))
			continue
		}
		p.Budgets[category] = amount
	}
	return dropped
}

func decodeTransaction(line string) (models.Transaction, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != transFieldCount {
		return models.Transaction{}, fmt.Errorf("expected %d fields, got %d", transFieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid transaction id %q", fields[1])
	}

	return models.NewTransactionBuilder().
		WithID(id).
		WithDate(fields[2]).
		WithCategory(fields[3]).
		WithDescription(fields[4]).
		WithAmountFromString(strings.TrimSpace(fields[5])).
		WithTypeCode(fields[6]).
		Build()
}

func repairNextID(p *models.UserProfile) bool {
	floor := p.MaxTransactionID() + 1
	if floor < models.FirstTransactionID {
		floor = models.FirstTransactionID
	}
	if p.NextTransactionID >= floor {
		return false
	}
	p.NextTransactionID = floor
	return true
}
