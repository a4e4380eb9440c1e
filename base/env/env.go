package env

import (
	"os"
)

// PodName example: k8ssta-market-main-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}
