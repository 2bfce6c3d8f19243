package session

import "time"

// syncCarouselLocked runs the promo carousel only while the session is idle
// on the home page.
func (c *Controller) syncCarouselLocked() {
	if c.closed || !c.idleLocked() {
		c.stopCarouselLocked()
		return
	}
	if c.carousel != nil {
		return
	}
	stop := make(chan struct{})
	c.carousel = stop
	go c.spin(stop, c.opts.CarouselInterval)
}

func (c *Controller) stopCarouselLocked() {
	if c.carousel != nil {
		close(c.carousel)
		c.carousel = nil
	}
}

func (c *Controller) spin(stop <-chan struct{}, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}

		c.mu.Lock()
		select {
		case <-stop:
			c.mu.Unlock()
			return
		default:
		}
		if !c.idleLocked() {
			c.mu.Unlock()
			continue
		}
		c.slide = (c.slide + 1) % c.opts.Slides
		st := c.stateLocked()
		c.mu.Unlock()

		c.notify(st)
	}
}
