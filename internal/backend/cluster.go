package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Cluster runs a task in an ephemeral, restart-never pod via the cluster
// CLI. Image and namespace come from the environment, same rationale as
// Container. On timeout it issues a best-effort pod delete so the cluster
// doesn't accumulate orphaned pods; delete errors are swallowed.
type Cluster struct{}

func (c *Cluster) Run(_ context.Context, command string, cwd string, timeout *time.Duration) (Result, error) {
	image := os.Getenv("RUSTYPIPE_CLUSTER_IMAGE")
	if image == "" {
		return Result{}, &SpawnError{Backend: "cluster", Err: fmt.Errorf("RUSTYPIPE_CLUSTER_IMAGE is not set")}
	}
	namespace := os.Getenv("RUSTYPIPE_CLUSTER_NAMESPACE")
	pod := fmt.Sprintf("rustypipe-%d", time.Now().UnixNano())

	argv := []string{"kubectl", "run", pod, "--rm", "--restart=Never", "--image", image}
	if namespace != "" {
		argv = append(argv, "--namespace", namespace)
	}
	argv = append(argv, extraArgs("RUSTYPIPE_CLUSTER_ARGS")...)
	argv = append(argv, "--", "sh", "-c", command)

	result, err := runShell("cluster", argv, cwd, timeout)

	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		deletePod(pod, namespace)
	}
	return result, err
}

func deletePod(pod, namespace string) {
	argv := []string{"delete", "pod", pod}
	if namespace != "" {
		argv = append(argv, "--namespace", namespace)
	}
	// Best effort: the pod may already be gone, or the cluster CLI may not
	// be permitted to delete in this context. Either way we don't surface
	// the error to the task runner.
	_ = exec.Command("kubectl", argv...).Run()
}
