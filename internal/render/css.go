package render

import (
	"fmt"

	"media-engine/internal/media"
)

// CSS animation builders for the video family. Every builder emits a complete
// HTML page: stage, controls, and the generated keyframes, so the artifact can
// be opened or embedded as-is.

func buildWalkAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	d := sel.Duration
	css := fmt.Sprintf(`@keyframes walkCycle {
  0%% { transform: translateX(-120px); }
  50%% { transform: translateX(120px) scaleX(1); }
  51%% { transform: translateX(120px) scaleX(-1); }
  100%% { transform: translateX(-120px) scaleX(-1); }
}
@keyframes legSwing {
  0%%, 100%% { transform: rotate(20deg); }
  50%% { transform: rotate(-20deg); }
}
.stage-figure {
  width: 60px; height: 120px;
  background: linear-gradient(%s, %s);
  border-radius: 30px 30px 8px 8px;
  animation: walkCycle %ds infinite linear;
  position: relative;
}
.stage-figure::before, .stage-figure::after {
  content: '';
  position: absolute; bottom: -30px;
  width: 14px; height: 36px;
  background: %s; border-radius: 7px;
  animation: legSwing %.1fs infinite ease-in-out;
}
.stage-figure::before { left: 12px; }
.stage-figure::after { right: 12px; animation-delay: %.2fs; }`,
		c.Primary, c.Secondary, d, c.Primary, float64(d)/10, float64(d)/20)

	return animationArtifact(sel, "character walk cycle", css)
}

func buildIdleAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	css := fmt.Sprintf(`@keyframes idleBreathing {
  0%%, 100%% { transform: scale(1) translateY(0px); }
  50%% { transform: scale(1.02) translateY(-2px); }
}
@keyframes idleGlow {
  0%%, 100%% { opacity: 0.3; transform: scale(1); }
  50%% { opacity: 0.6; transform: scale(1.1); }
}
.stage-figure {
  width: 80px; height: 140px;
  background: linear-gradient(%s, %s);
  border-radius: 40px 40px 10px 10px;
  animation: idleBreathing %ds infinite ease-in-out;
  position: relative;
}
.stage-figure::after {
  content: '';
  position: absolute; inset: -10px;
  border-radius: inherit;
  background: radial-gradient(circle, %s, transparent 70%%);
  animation: idleGlow %ds infinite ease-in-out;
}`, c.Primary, c.Secondary, sel.Duration, c.Accent, sel.Duration)

	return animationArtifact(sel, "idle breathing loop", css)
}

func buildAttackAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	d := sel.Duration
	css := fmt.Sprintf(`@keyframes attackSequence {
  0%%, 80%% { transform: translateX(0px) scale(1); }
  10%% { transform: translateX(-5px) scale(1.05); }
  20%% { transform: translateX(10px) scale(0.95); }
  30%% { transform: translateX(0px) scale(1); }
}
@keyframes impactFlash {
  0%%, 15%%, 25%%, 100%% { opacity: 0; transform: scale(1); }
  20%% { opacity: 1; transform: scale(1.5); }
}
.stage-figure {
  width: 70px; height: 130px;
  background: linear-gradient(%s, %s);
  border-radius: 35px 35px 8px 8px;
  animation: attackSequence %ds infinite;
  position: relative;
}
.stage-figure::after {
  content: '';
  position: absolute; right: -40px; top: 30px;
  width: 30px; height: 30px; border-radius: 50%%;
  background: %s;
  animation: impactFlash %ds infinite;
}`, c.Primary, c.Secondary, d, c.Accent, d)

	return animationArtifact(sel, "attack sequence", css)
}

func buildFlowAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	css := fmt.Sprintf(`@keyframes flowMove {
  0%% { background-position: 0%% 50%%; }
  50%% { background-position: 100%% 50%%; }
  100%% { background-position: 0%% 50%%; }
}
.stage-figure {
  width: 100%%; height: 200px;
  background: linear-gradient(-45deg, %s, %s, %s, %s);
  background-size: 400%% 400%%;
  animation: flowMove %ds ease infinite;
  border-radius: 10px;
}`, c.Background, c.Primary, c.Secondary, c.Accent, sel.Duration)

	return animationArtifact(sel, "environment flow", css)
}

func buildTransitionAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	d := sel.Duration
	css := fmt.Sprintf(`@keyframes headerSlide {
  0%%, 100%% { transform: translateX(-100%%); opacity: 0; }
  20%%, 80%% { transform: translateX(0); opacity: 1; }
}
@keyframes contentFade {
  0%%, 100%% { opacity: 0; }
  30%%, 70%% { opacity: 1; }
}
.stage-figure {
  width: 260px; padding: 20px;
  background: %s; border-radius: 12px;
}
.stage-figure .panel-header {
  height: 24px; border-radius: 6px;
  background: %s;
  animation: headerSlide %ds infinite ease-in-out;
}
.stage-figure .panel-body {
  height: 80px; margin-top: 12px; border-radius: 6px;
  background: %s;
  animation: contentFade %ds infinite ease-in-out;
}`, c.Background, c.Primary, d, c.Secondary, d)

	return animationArtifact(sel, "UI transition", css)
}

func buildParticleAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	d := sel.Duration
	css := fmt.Sprintf(`@keyframes particleRise {
  0%% { transform: translateY(0) scale(1); opacity: 1; }
  100%% { transform: translateY(-160px) scale(0.3); opacity: 0; }
}
.stage-figure { position: relative; width: 200px; height: 200px; }
.stage-figure span {
  position: absolute; bottom: 0;
  width: 12px; height: 12px; border-radius: 50%%;
  animation: particleRise %ds infinite ease-out;
}
.stage-figure span:nth-child(1) { left: 20%%; background: %s; }
.stage-figure span:nth-child(2) { left: 45%%; background: %s; animation-delay: %.1fs; }
.stage-figure span:nth-child(3) { left: 70%%; background: %s; animation-delay: %.1fs; }`,
		d, c.Primary, c.Secondary, float64(d)/3, c.Accent, 2*float64(d)/3)

	return animationArtifact(sel, "particle effect", css)
}

func buildTextRevealAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	css := fmt.Sprintf(`@keyframes typeReveal {
  0%% { width: 0; }
  60%%, 100%% { width: 100%%; }
}
@keyframes caretBlink {
  0%%, 100%% { border-color: transparent; }
  50%% { border-color: %s; }
}
.stage-figure {
  overflow: hidden; white-space: nowrap;
  border-right: 3px solid %s;
  font-family: monospace; font-size: 1.4em;
  color: %s;
  animation: typeReveal %ds steps(30) infinite, caretBlink 0.8s infinite;
}`, c.Accent, c.Accent, c.Text, sel.Duration)

	return animationArtifact(sel, "text reveal", css)
}

func buildLogoAnimation(sel media.Selection) Artifact {
	c := sel.Colors
	css := fmt.Sprintf(`@keyframes logoIntro {
  0%% { transform: scale(0) rotate(-180deg); opacity: 0; }
  40%%, 85%% { transform: scale(1) rotate(0deg); opacity: 1; }
  100%% { transform: scale(1.1); opacity: 0; }
}
.stage-figure {
  width: 120px; height: 120px; border-radius: 24px;
  background: conic-gradient(from 0deg, %s, %s, %s, %s);
  animation: logoIntro %ds ease-in-out infinite;
}`, c.Primary, c.Secondary, c.Accent, c.Primary, sel.Duration)

	return animationArtifact(sel, "logo intro", css)
}

// animationArtifact wraps generated CSS in the shared HTML player page.
func animationArtifact(sel media.Selection, kind, css string) Artifact {
	title := sel.Prompt
	if len(title) > 50 {
		title = title[:50] + "..."
	}

	extraMarkup := ""
	switch sel.TemplateID {
	case media.VideoUITransition:
		extraMarkup = `<div class="panel-header"></div><div class="panel-body"></div>`
	case media.VideoParticleEffect:
		extraMarkup = `<span></span><span></span><span></span>`
	case media.VideoTextReveal:
		extraMarkup = title
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Generated Animation: %s</title>
<style>
body {
  margin: 0; padding: 20px;
  background: %s;
  font-family: Arial, sans-serif;
  display: flex; flex-direction: column; align-items: center;
  min-height: 100vh;
}
.animation-stage {
  background: rgba(0, 0, 0, 0.15);
  border-radius: 10px; padding: 40px; margin: 20px 0;
  display: flex; justify-content: center; align-items: center;
  min-width: 320px; min-height: 240px;
}
.controls button {
  background: linear-gradient(45deg, %s, %s);
  border: none; color: %s;
  padding: 10px 20px; margin: 0 10px;
  border-radius: 25px; cursor: pointer; font-weight: bold;
}
.info { color: %s; font-size: 0.9em; margin-top: 15px; text-align: center; }
%s
</style>
</head>
<body>
<div class="animation-stage"><div class="stage-figure">%s</div></div>
<div class="controls">
  <button onclick="toggleAnimation()">Pause/Play</button>
  <button onclick="restartAnimation()">Restart</button>
</div>
<div class="info">Prompt: "%s"<br>Duration: %ds | Format: CSS Animation</div>
<script>
let paused = false;
function toggleAnimation() {
  const el = document.querySelector('.stage-figure');
  el.style.animationPlayState = paused ? 'running' : 'paused';
  paused = !paused;
}
function restartAnimation() {
  const el = document.querySelector('.stage-figure');
  el.style.animation = 'none';
  el.offsetHeight;
  el.style.animation = null;
}
</script>
</body>
</html>`,
		title, sel.Colors.Background, sel.Colors.Primary, sel.Colors.Secondary,
		sel.Colors.Text, sel.Colors.Text, css, extraMarkup, title, sel.Duration)

	return Artifact{
		Content:     html,
		Format:      FormatCSSAnimation,
		Description: fmt.Sprintf("Generated %s animation with %s theme for %d seconds", kind, sel.Theme, sel.Duration),
		UsageTips: []string{
			"Embed the HTML to display the animation",
			"Runs in any modern browser with no dependencies",
		},
	}
}
