package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"civicdispatch-be/config"

	"github.com/gin-gonic/gin"
)

const (
	rewardKeyPrefix     = "citizen_rewards"
	pointsPerReport     = 50
	redemptionThreshold = 500
)

func rewardKey(phone string) string {
	return rewardKeyPrefix + ":" + phone
}

// creditRewardPoints awards points for a submission. Rewards live in Redis;
// without Redis the submission still succeeds, just unrewarded.
func creditRewardPoints(ctx context.Context, phone string) int64 {
	if config.RedisClient == nil {
		return 0
	}
	balance, err := config.RedisClient.IncrBy(ctx, rewardKey(phone), pointsPerReport).Result()
	if err != nil {
		log.Printf("Failed to credit reward points for %s: %v", phone, err)
		return 0
	}
	return balance
}

// GetRewards returns a citizen's reward point balance.
func GetRewards(c *gin.Context) {
	if config.RedisClient == nil {
		c.JSON(http.StatusOK, gin.H{"points": 0})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	points, err := config.RedisClient.Get(ctx, rewardKey(c.Param("phone"))).Int64()
	if err != nil {
		points = 0
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// RedeemRewards zeroes the balance when it has reached the redemption
// threshold and reports the amount transferred.
func RedeemRewards(c *gin.Context) {
	if config.RedisClient == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rewards unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := rewardKey(c.Param("phone"))
	points, err := config.RedisClient.Get(ctx, key).Int64()
	if err != nil || points < redemptionThreshold {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Minimum 500 points required for redemption",
			"points": points,
		})
		return
	}

	if err := config.RedisClient.Set(ctx, key, 0, 0).Err(); err != nil {
		log.Printf("Failed to redeem rewards for %s: %v", c.Param("phone"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem rewards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Points transferred via DBT",
		"transferred": points,
		"points":      0,
	})
}
