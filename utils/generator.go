package utils

import (
	"fmt"
	"time"
)

// Quote and freeze codes keep the legacy epoch-millisecond format the
// admin panel already understands.

func NewQuoteCode() string {
	return fmt.Sprintf("Q-%d", time.Now().UnixMilli())
}

func NewFreezeCode() string {
	return fmt.Sprintf("FRZ-%d", time.Now().UnixMilli())
}
