package session

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/sleepsound/internal/admin"
	"github.com/Skotchmaster/sleepsound/internal/events"
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/order"
	"github.com/Skotchmaster/sleepsound/internal/storage"
)

// AdminLogin opens the admin console for an approved account.
func (c *Controller) AdminLogin(ctx context.Context, username, password string) (models.AdminAccount, error) {
	var acc models.AdminAccount
	err := c.run(ctx, func() (change, error) {
		a, err := c.admins.Login(username, password)
		if err != nil {
			return change{}, err
		}
		acc = a
		return change{
			apply: func() {
				c.admin = &a
				c.view = ViewAdmin
			},
			topic: events.TopicAdmin,
			key:   fmt.Sprint(a.ID),
			event: map[string]any{"type": "admin_logged_in", "admin_id": a.ID},
		}, nil
	})
	return acc, err
}

// AdminRegister files a pending access request.
func (c *Controller) AdminRegister(ctx context.Context, username, password, confirm string) (models.AdminAccount, error) {
	var acc models.AdminAccount
	err := c.run(ctx, func() (change, error) {
		reg, a, err := c.admins.Register(username, password, confirm, c.opts.Now())
		if err != nil {
			return change{}, err
		}
		acc = a
		return change{
			save:  map[string]any{storage.KeyAdmins: reg.Accounts()},
			apply: func() { c.admins = reg },
			topic: events.TopicAdmin,
			key:   fmt.Sprint(a.ID),
			event: map[string]any{"type": "admin_requested", "admin_id": a.ID, "username": a.Username},
		}, nil
	})
	return acc, err
}

// requireAdminLocked checks that callerID is an account allowed into the
// console.
func (c *Controller) requireAdminLocked(callerID int64) error {
	a, err := c.admins.Get(callerID)
	if err != nil {
		return fmt.Errorf("%w: unknown caller", admin.ErrForbidden)
	}
	if !admin.IsMain(a) && a.Status != models.AdminApproved {
		return fmt.Errorf("%w: caller not approved", admin.ErrForbidden)
	}
	return nil
}

func (c *Controller) AdminOrders(callerID int64) ([]models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireAdminLocked(callerID); err != nil {
		return nil, err
	}
	return c.book.Orders(), nil
}

func (c *Controller) AdminStats(callerID int64) (order.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireAdminLocked(callerID); err != nil {
		return order.Stats{}, err
	}
	return c.book.Stats(c.opts.Branches), nil
}

func (c *Controller) AdminAccounts(callerID int64) ([]models.AdminAccount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireAdminLocked(callerID); err != nil {
		return nil, err
	}
	return c.admins.Accounts(), nil
}

// UpdateOrderStatus sets any lifecycle status, in either direction.
func (c *Controller) UpdateOrderStatus(ctx context.Context, callerID int64, id string, status models.OrderStatus) (models.Order, error) {
	var updated models.Order
	err := c.run(ctx, func() (change, error) {
		if err := c.requireAdminLocked(callerID); err != nil {
			return change{}, err
		}
		prev, err := c.book.FindByID(id)
		if err != nil {
			return change{}, err
		}
		book, o, err := c.book.UpdateStatus(id, status)
		if err != nil {
			return change{}, err
		}
		updated = o
		return change{
			save:  map[string]any{storage.KeyOrders: book.Orders()},
			apply: func() { c.book = book },
			topic: events.TopicOrder,
			key:   o.ID,
			event: map[string]any{"type": "order_status_updated", "order_id": o.ID, "from": prev.Status, "to": o.Status},
		}, nil
	})
	return updated, err
}

// SetPrice changes a catalog price. The full product list is persisted so a
// restart applies it again.
func (c *Controller) SetPrice(ctx context.Context, callerID int64, productID int, price int64) (models.Product, error) {
	var updated models.Product
	err := c.run(ctx, func() (change, error) {
		if err := c.requireAdminLocked(callerID); err != nil {
			return change{}, err
		}
		prev, err := c.catalog.Get(productID)
		if err != nil {
			return change{}, err
		}
		next, p, err := c.catalog.SetPrice(productID, price)
		if err != nil {
			return change{}, err
		}
		updated = p
		return change{
			save: map[string]any{storage.KeyProducts: next.Products()},
			apply: func() {
				c.catalog = next
				if c.product != nil && c.product.ID == p.ID {
					open := p.Clone()
					c.product = &open
				}
			},
			topic: events.TopicProduct,
			key:   fmt.Sprint(p.ID),
			event: map[string]any{"type": "price_updated", "product_id": p.ID, "old_price": prev.Price, "new_price": p.Price},
		}, nil
	})
	return updated, err
}

func (c *Controller) manage(ctx context.Context, callerID, id int64, typ string,
	op func(admin.Registry) (admin.Registry, models.AdminAccount, error)) (models.AdminAccount, error) {
	var target models.AdminAccount
	err := c.run(ctx, func() (change, error) {
		reg, a, err := op(c.admins)
		if err != nil {
			return change{}, err
		}
		target = a
		return change{
			save: map[string]any{storage.KeyAdmins: reg.Accounts()},
			apply: func() {
				c.admins = reg
				if c.admin == nil || c.admin.ID != id {
					return
				}
				if typ == "admin_removed" {
					c.logoutLocked()
					return
				}
				cur := a
				c.admin = &cur
			},
			topic: events.TopicAdmin,
			key:   fmt.Sprint(id),
			event: map[string]any{"type": typ, "admin_id": id, "by": callerID},
		}, nil
	})
	return target, err
}

func (c *Controller) ApproveAdmin(ctx context.Context, callerID, id int64) (models.AdminAccount, error) {
	return c.manage(ctx, callerID, id, "admin_approved", func(r admin.Registry) (admin.Registry, models.AdminAccount, error) {
		return r.Approve(callerID, id)
	})
}

func (c *Controller) RejectAdmin(ctx context.Context, callerID, id int64) (models.AdminAccount, error) {
	return c.manage(ctx, callerID, id, "admin_rejected", func(r admin.Registry) (admin.Registry, models.AdminAccount, error) {
		return r.Reject(callerID, id)
	})
}

// RemoveAdmin deletes an account. Removing the account that is signed in
// ends the session.
func (c *Controller) RemoveAdmin(ctx context.Context, callerID, id int64) (models.AdminAccount, error) {
	return c.manage(ctx, callerID, id, "admin_removed", func(r admin.Registry) (admin.Registry, models.AdminAccount, error) {
		return r.Remove(callerID, id)
	})
}

// AdminID returns the signed-in admin, if any.
func (c *Controller) AdminID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.admin == nil {
		return 0, false
	}
	return c.admin.ID, true
}
