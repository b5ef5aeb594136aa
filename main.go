package main

import (
	"github.com/DedS3t/monopoly-engine/app/controllers"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/config"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	if err := logging.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.WithError(err).Fatal("invalid logging configuration")
	}

	var feed controllers.Publisher
	if cfg.RedisURL != "" {
		pool := cache.CreateRedisPool(cfg.RedisURL)
		defer pool.Close()
		feed = cache.NewTurnFeed(pool)
	}

	match, err := controllers.CreateGame(cfg, feed, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("failed creating game")
	}
	summary, err := match.Play()
	if err != nil {
		logrus.WithError(err).Fatal("game aborted")
	}
	for _, p := range summary.Players {
		logrus.WithFields(logrus.Fields{
			"player":     p.Username,
			"balance":    p.Balance,
			"position":   p.Pos,
			"properties": len(p.Properties),
			"mortgaged":  len(p.Mortgaged),
			"active":     p.Active,
		}).Info("final standing")
	}
}
