package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/kevin-chtw/tw_mjlog/analyzer"
	"github.com/kevin-chtw/tw_mjlog/config"
	"github.com/kevin-chtw/tw_mjlog/mjlog"
	"github.com/kevin-chtw/tw_mjlog/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	configFile string
	tagFilter  []string
)

var rootCmd = &cobra.Command{
	Use:   "tw_mjlog",
	Short: "tw_mjlog 天凤牌谱解析工具",
	Long:  `tw_mjlog 解析天凤 mjlog 牌谱并重放校验对局状态`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configFile); err != nil {
			return err
		}
		level, err := logrus.ParseLevel(config.AppConfig.LogConf.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		if config.AppConfig.LogConf.Console {
			logger.Log = utils.ConsoleLogger(level)
		} else {
			logger.Log = utils.Logger(level, config.AppConfig.LogConf.Path)
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <mjlog>...",
	Short: "解析牌谱并输出事件 JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			nodes, err := mjlog.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			events, err := mjlog.ParseNodes(nodes)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			for _, ev := range events {
				if len(tagFilter) > 0 && !slices.Contains(tagFilter, ev.Tag()) {
					continue
				}
				text, err := utils.ToJSON(map[string]any{"tag": ev.Tag(), "data": ev})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <mjlog>...",
	Short: "重放牌谱并校验对局状态",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			nodes, err := mjlog.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			log, err := mjlog.ParseLog(nodes)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			game, err := analyzer.Analyze(log)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			counter := game.Counter()
			logger.Log.Infof("%s: %d rounds, draw %d, discard %d, chi %d, pon %d, kan %d",
				path, len(game.PastRounds()),
				counter.Draw, counter.Discard, counter.Chi, counter.Pon, counter.Kan)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")
	parseCmd.Flags().StringSliceVar(&tagFilter, "tags", nil, "only output events with these tags")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
