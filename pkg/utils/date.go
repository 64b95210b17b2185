package utils

import (
	"log"
	"time"
)

func GetKSTLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

func TimeNowKST() time.Time {
	return time.Now().In(GetKSTLocation())
}
