package config

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// regenerateSwaggerDocs 调用swag重新生成 docs/ 下的接口文档
func regenerateSwaggerDocs() error {
	log.Println("Start regenerating swagger docs")
	// Build the command and run it with a timeout so it won't hang the process.
	args := []string{
		"run",
		"github.com/swaggo/swag/cmd/swag@latest",
		"init",
		"-g",
		"cmd/server/main.go",
		"-o",
		"docs",
		"--parseDependency",
		"--parseInternal",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run swag init: %w; stdout: %s; stderr: %s", err, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
	}

	log.Printf("swag init completed\n")
	return nil
}

// InitProgram 开发模式下重新生成接口文档，失败不阻塞启动
func InitProgram() {
	if IsRelease() {
		return
	}
	if err := regenerateSwaggerDocs(); err != nil {
		log.Printf("Fail to regenerate swagger docs: %v", err)
	}
}
