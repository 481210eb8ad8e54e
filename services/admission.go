package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
)

// Limits applied by the admission policy.
const (
	CooldownMinutes  = 10 // minimum minutes between orders from one table
	MaxUnitsPerOrder = 10 // total units across all lines of one order
	MaxMeatUnits     = 4  // meat units in a single order
	MaxSpecialUnits  = 5  // cumulative units of each Special item per table
)

type RejectReason string

const (
	RejectCooldown     RejectReason = "cooldown_active"
	RejectInvalidItems RejectReason = "invalid_items"
	RejectMeatCap      RejectReason = "meat_cap_exceeded"
	RejectSpecialCap   RejectReason = "special_cap_exceeded"
)

// RejectionError is returned for every policy rejection. Reason is stable
// and machine-checkable; Message is what the guest sees.
type RejectionError struct {
	Reason          RejectReason
	Message         string
	CooldownMinutes int
}

func (e *RejectionError) Error() string {
	return e.Message
}

// AsRejection unwraps a policy rejection from an error chain.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// ProposedLine is one entry of a submitted order, before normalization.
// The item may be referenced by id, by name, or both.
type ProposedLine struct {
	MenuItemID uint   `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// AdmissionService decides whether a table may place a proposed order and,
// on acceptance, persists it. The cooldown check and the final write are
// not wrapped in a serializing transaction: two submissions racing inside
// one cooldown window can both be accepted. Accepted trade-off.
type AdmissionService struct {
	DB *gorm.DB
}

func NewAdmissionService(db *gorm.DB) *AdmissionService {
	return &AdmissionService{DB: db}
}

// minutesSinceLastOrder returns the elapsed minutes since the table's most
// recent order of any status. ok=false means the table has never ordered.
func (as *AdmissionService) minutesSinceLastOrder(tableID uint) (float64, bool, error) {
	var last models.Order
	err := as.DB.Where("table_id = ?", tableID).
		Order("created_at DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return time.Since(last.CreatedAt).Minutes(), true, nil
}

// Status reports whether the table may order now and, if not, the whole
// minutes remaining. A last-order timestamp in the future (clock skew)
// counts as orderable.
func (as *AdmissionService) Status(tableID uint) (bool, int, error) {
	elapsed, hasPrior, err := as.minutesSinceLastOrder(tableID)
	if err != nil {
		return false, 0, err
	}
	if !hasPrior || elapsed < 0 || elapsed >= CooldownMinutes {
		return true, 0, nil
	}
	remaining := int(math.Ceil(CooldownMinutes - elapsed))
	if remaining < 0 {
		remaining = 0
	}
	return false, remaining, nil
}

// SpecialCounts aggregates the units of each Special item this table has
// already ordered, across pending and completed orders alike. Lines carry
// their category snapshot, so this is a single GROUP BY over the line table.
func (as *AdmissionService) SpecialCounts(tableID uint) (map[uint]int, error) {
	type row struct {
		MenuItemID uint
		Units      int
	}
	var rows []row
	err := as.DB.Model(&models.OrderLine{}).
		Select("order_lines.menu_item_id AS menu_item_id, SUM(order_lines.quantity) AS units").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("orders.table_id = ? AND order_lines.category = ?", tableID, models.CategorySpecial).
		Group("order_lines.menu_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.MenuItemID] = r.Units
	}
	return counts, nil
}

// Submit runs the admission sequence for one order attempt. Checks run in
// order and the first failure wins; nothing is persisted unless every check
// passes. On success the new order's id is returned.
func (as *AdmissionService) Submit(tableID uint, proposed []ProposedLine) (uint, error) {
	// 1. Cooldown
	canOrder, remaining, err := as.Status(tableID)
	if err != nil {
		return 0, err
	}
	if !canOrder {
		return 0, &RejectionError{
			Reason:          RejectCooldown,
			Message:         fmt.Sprintf("please wait %d more minute(s) before placing another order", remaining),
			CooldownMinutes: remaining,
		}
	}

	// 2. Shape: non-empty, bounded units, known items, positive quantities
	if len(proposed) == 0 {
		return 0, &RejectionError{Reason: RejectInvalidItems, Message: "order contains no items"}
	}
	totalUnits := 0
	for _, line := range proposed {
		if line.Quantity <= 0 {
			return 0, &RejectionError{Reason: RejectInvalidItems, Message: "item quantity must be positive"}
		}
		totalUnits += line.Quantity
	}
	if totalUnits > MaxUnitsPerOrder {
		return 0, &RejectionError{
			Reason:  RejectInvalidItems,
			Message: fmt.Sprintf("maximum %d items per order", MaxUnitsPerOrder),
		}
	}

	normalized := make([]models.OrderLine, 0, len(proposed))
	for _, line := range proposed {
		item, err := as.resolveItem(line)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, &RejectionError{
					Reason:  RejectInvalidItems,
					Message: fmt.Sprintf("unknown menu item %q", line.Name),
				}
			}
			return 0, err
		}
		normalized = append(normalized, models.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			Category:   item.Category,
		})
	}

	// 3. Meat cap
	meatUnits := 0
	for _, line := range normalized {
		if line.Category == models.CategoryMeat {
			meatUnits += line.Quantity
		}
	}
	if meatUnits > MaxMeatUnits {
		return 0, &RejectionError{
			Reason:  RejectMeatCap,
			Message: fmt.Sprintf("maximum %d meat items per order (you have %d)", MaxMeatUnits, meatUnits),
		}
	}

	// 4. Special cap, cumulative across the table's whole history
	proposedSpecial := make(map[uint]int)
	specialName := make(map[uint]string)
	for _, line := range normalized {
		if line.Category == models.CategorySpecial {
			proposedSpecial[line.MenuItemID] += line.Quantity
			specialName[line.MenuItemID] = line.Name
		}
	}
	if len(proposedSpecial) > 0 {
		history, err := as.SpecialCounts(tableID)
		if err != nil {
			return 0, err
		}
		for itemID, qty := range proposedSpecial {
			if history[itemID]+qty > MaxSpecialUnits {
				left := MaxSpecialUnits - history[itemID]
				if left < 0 {
					left = 0
				}
				return 0, &RejectionError{
					Reason: RejectSpecialCap,
					Message: fmt.Sprintf("%q is limited to %d per table; you may order %d more",
						specialName[itemID], MaxSpecialUnits, left),
				}
			}
		}
	}

	// 5. Persist order and lines atomically
	order := models.Order{
		TableID:   tableID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines:     normalized,
	}
	if err := as.DB.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// resolveItem looks an item up by id first, then by exact name for
// submissions that carry only a name.
func (as *AdmissionService) resolveItem(line ProposedLine) (*models.MenuItem, error) {
	var item models.MenuItem
	if line.MenuItemID != 0 {
		if err := as.DB.First(&item, line.MenuItemID).Error; err == nil {
			return &item, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if line.Name == "" {
		return nil, gorm.ErrRecordNotFound
	}
	if err := as.DB.Where("name = ?", line.Name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
