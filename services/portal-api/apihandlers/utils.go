package apihandlers

import (
	"math/rand"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
)

func (h *HttpEndpoints) isInstanceAllowed(instanceID string) bool {
	return utils.ContainsString(h.allowedInstanceIDs, instanceID)
}

func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}
