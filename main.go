package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"daily_pilot/pkg/projectlog"
	"daily_pilot/service/factory"

	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if serviceErr := recover(); serviceErr != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			log.Println("The job exits abnormally, error message:【", serviceErr, "】")
			log.Println("Stack info: ")
			fmt.Printf("==> %s\n", string(buf[:n]))

			// @todo 发送报警信息
			os.Exit(1)
		}
	}()

	projectlog.Init()

	// 一次性作业：跑完一轮就退出，由外部 cron 调度
	service, err := factory.GetServiceFactory().NewDailyService()
	if err != nil {
		logrus.Errorf("Failed to create daily service, err = %v", err)
		os.Exit(1)
	}

	if err := service.Run(context.Background()); err != nil {
		logrus.Errorf("Daily run failed, err = %v", err)
		os.Exit(1)
	}
}
