package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"k8s.io/klog/v2"

	"k8s-layers/pkg/cluster"
	"k8s-layers/pkg/config"
	"k8s-layers/pkg/k8s"
	"k8s-layers/pkg/layer"
	"k8s-layers/pkg/state"
	"k8s-layers/pkg/version"
)

func main() {
	klog.InitFlags(nil)
	versionFlag := flag.String("version", "", "Kubernetes version to test (defaults to K8S_LAYERS_VERSION, then the default version)")
	all := flag.Bool("all", false, "Test every supported Kubernetes version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		klog.Fatalf("Configuration loading failed: %v", err)
	}
	if *versionFlag != "" {
		cfg.Version = *versionFlag
	}

	var targets []*version.KubernetesVersion
	if *all {
		for _, v := range layer.DefaultResolver().Versions() {
			targets = append(targets, &v)
		}
	} else {
		v, err := cfg.KubernetesVersion()
		if err != nil {
			klog.Fatalf("Invalid version: %v", err)
		}
		targets = append(targets, v)
	}

	st, err := state.NewManager(cfg.StatePath)
	if err != nil {
		klog.Fatalf("Failed to open state: %v", err)
	}

	fmt.Println("=== k8s-layers Integration Test ===")
	root := layer.NewRoot("integ-kubectl-layer")
	cm := cluster.NewManager()

	var failed []string
	for _, v := range targets {
		if err := runVersion(context.Background(), root, cm, st, v, cfg.KeepCluster); err != nil {
			klog.ErrorS(err, "Version test failed")
			failed = append(failed, err.Error())
		}
	}

	if len(failed) > 0 {
		fmt.Printf("\n=== %d of %d versions failed ===\n", len(failed), len(targets))
		os.Exit(1)
	}
	fmt.Println("\n=== All Tests Passed! ===")
}

func runVersion(ctx context.Context, root *layer.Node, cm *cluster.Manager, st *state.Manager, v *version.KubernetesVersion, keep bool) error {
	label := "default"
	if v != nil {
		label = v.String()
	}
	fmt.Printf("\n--- Kubernetes %s ---\n", label)

	// 1. Resolve layer
	scope := root.Child(label)
	vc, err := layer.ClusterVersionConfig(scope, v)
	if err != nil {
		var unsupported *layer.UnsupportedVersionError
		if errors.As(err, &unsupported) {
			return fmt.Errorf("version %s: %w", unsupported.Version, err)
		}
		return fmt.Errorf("version %s: failed to construct layer: %w", label, err)
	}
	fmt.Printf("1. Resolved %s (%s, %s)\n", vc.Version, vc.Layer.KubectlVersion(), vc.Layer.NodeImage())

	// 2. Provision cluster
	name := cluster.ClusterName(vc)
	fmt.Printf("2. Ensuring cluster %s...\n", name)
	kubeconfig, err := cm.EnsureCluster(vc)
	if err != nil {
		return fmt.Errorf("version %s: %w", vc.Version, err)
	}
	if err := st.RecordCluster(name, state.ClusterRecord{
		Version:   vc.Version.String(),
		Layer:     vc.Layer.Path(),
		NodeImage: vc.Layer.NodeImage(),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		klog.ErrorS(err, "Failed to record cluster state", "cluster", name)
	}

	// 3. Verify versions
	client, err := k8s.NewClientFromKubeconfig(kubeconfig)
	if err != nil {
		return fmt.Errorf("version %s: %w", vc.Version, err)
	}
	verifyErr := client.VerifyVersion(ctx, vc.Version)
	if verifyErr == nil {
		fmt.Println("3. ✅ Server and nodes match the resolved version")
	}

	// 4. Cleanup
	if keep {
		fmt.Printf("4. Keeping cluster %s\n", name)
	} else {
		fmt.Println("4. Deleting cluster...")
		if err := cm.DeleteCluster(name); err != nil {
			return fmt.Errorf("version %s: %w", vc.Version, err)
		}
		if err := st.ForgetCluster(name); err != nil {
			klog.ErrorS(err, "Failed to update cluster state", "cluster", name)
		}
	}

	if verifyErr != nil {
		return fmt.Errorf("version %s: %w", vc.Version, verifyErr)
	}
	return nil
}
